// Package state holds the mutable session state shared by the gameplay components.
package state

import (
	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// Phase is the encounter state machine's current state
type Phase int

// Phases
const (
	PhaseIdle Phase = iota
	PhasePathMoving
	PhaseEncounterOpen
	PhaseCombatRunning
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePathMoving:
		return "path_moving"
	case PhaseEncounterOpen:
		return "encounter_open"
	case PhaseCombatRunning:
		return "combat_running"
	default:
		return "unknown"
	}
}

// Pawn is the player token's position on the map
type Pawn struct {
	Pos    hex.Coord
	Placed bool
}

// MoveTo places the pawn on a coordinate
func (p *Pawn) MoveTo(c hex.Coord) {
	p.Pos = c
	p.Placed = true
}

// Machine is the encounter state machine. There is one per map instance.
type Machine struct {
	phase Phase

	// Tile of the currently open encounter or combat
	active    hex.Coord
	hasActive bool

	// One-shot: the next combat end leaves tile cleanup to whoever opened it
	suppressCleanup bool
}

// Phase returns the current phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Busy reports whether input must be suppressed: a walk is in progress,
// combat is running or an encounter is open.
func (m *Machine) Busy() bool {
	return m.phase != PhaseIdle
}

// BeginWalk enters PathMoving
func (m *Machine) BeginWalk() {
	m.phase = PhasePathMoving
}

// OpenEncounter enters EncounterOpen for the tile at c
func (m *Machine) OpenEncounter(c hex.Coord) {
	m.phase = PhaseEncounterOpen
	m.active = c
	m.hasActive = true
}

// OpenCombat enters CombatRunning for the tile at c
func (m *Machine) OpenCombat(c hex.Coord, suppressCleanup bool) {
	m.phase = PhaseCombatRunning
	m.active = c
	m.hasActive = true
	m.suppressCleanup = suppressCleanup
}

// Active returns the tile of the open encounter or combat, if any
func (m *Machine) Active() (hex.Coord, bool) {
	return m.active, m.hasActive
}

// TakeSuppressCleanup returns the suppress-cleanup flag and clears it
func (m *Machine) TakeSuppressCleanup() bool {
	s := m.suppressCleanup
	m.suppressCleanup = false
	return s
}

// Idle returns the machine to PhaseIdle and forgets the active tile
func (m *Machine) Idle() {
	m.phase = PhaseIdle
	m.hasActive = false
	m.active = hex.Coord{}
}

// Reset clears everything, including the suppress-cleanup flag
func (m *Machine) Reset() {
	*m = Machine{}
}

// Game bundles the per-map session state
type Game struct {
	Tiles   *world.Store
	Pawn    Pawn
	Machine Machine

	Messages []string

	Stage int // Current stage number, 1-based
}

// NewGame creates a new game instance around a tile store
func NewGame(tiles *world.Store) *Game {
	return &Game{
		Tiles:    tiles,
		Messages: make([]string, 0),
		Stage:    1,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AdvanceStage increments the stage counter and resets per-map state.
// The caller rebuilds the tile store.
func (g *Game) AdvanceStage() {
	g.Stage++
	g.Pawn = Pawn{}
	g.Machine.Reset()
	if g.Tiles != nil {
		g.Tiles.Clear()
	}
}
