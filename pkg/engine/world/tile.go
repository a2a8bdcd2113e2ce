// Package world provides the tile records and tile store for a hex map.
// These are engine-level constructs; game rules live in pkg/game.
package world

import (
	"strings"

	"hexcrawl/pkg/engine/hex"
)

// Terrain is the kind of content a tile holds
type Terrain int

// Terrain constants
const (
	TerrainEmpty Terrain = iota
	TerrainEncounter
	TerrainBlocked
	TerrainExit
)

// String returns the string representation of a terrain kind
func (t Terrain) String() string {
	switch t {
	case TerrainEmpty:
		return "Empty"
	case TerrainEncounter:
		return "Encounter"
	case TerrainBlocked:
		return "Blocked"
	case TerrainExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// ParseTerrain converts a terrain name back to its constant, ignoring case
func ParseTerrain(s string) (Terrain, bool) {
	for _, t := range []Terrain{TerrainEmpty, TerrainEncounter, TerrainBlocked, TerrainExit} {
		if strings.EqualFold(t.String(), s) {
			return t, true
		}
	}
	return TerrainEmpty, false
}

// Tile represents a single cell of the map.
// Terrain is TerrainEncounter exactly when Encounter is non-nil; use
// SetEncounter and ClearEncounter rather than writing the fields directly.
type Tile struct {
	Coord   hex.Coord
	Terrain Terrain

	// Fog-of-war state. Only ever goes from false to true.
	Revealed bool

	// Whether the tile can be entered at all, independent of Revealed
	Passable bool

	Barriers BarrierStack

	Encounter *Encounter
}

// NewTile creates a passable, unrevealed tile of the given terrain
func NewTile(c hex.Coord, terrain Terrain) *Tile {
	t := &Tile{
		Coord:    c,
		Terrain:  terrain,
		Passable: terrain != TerrainBlocked,
	}
	t.normalize()
	return t
}

// SetEncounter places an encounter on the tile. A nil encounter clears it.
func (t *Tile) SetEncounter(e *Encounter) {
	if e == nil {
		t.ClearEncounter()
		return
	}
	t.Encounter = e
	t.Terrain = TerrainEncounter
}

// ClearEncounter removes the encounter and resets the terrain to empty
func (t *Tile) ClearEncounter() {
	t.Encounter = nil
	if t.Terrain == TerrainEncounter {
		t.Terrain = TerrainEmpty
	}
}

// HasEncounter returns true if an encounter sits on this tile
func (t *Tile) HasEncounter() bool {
	return t != nil && t.Encounter != nil
}

// IsExit returns true if this is an exit tile
func (t *Tile) IsExit() bool {
	return t != nil && t.Terrain == TerrainExit
}

// Reveal marks the tile as revealed. Returns true if it was hidden before.
func (t *Tile) Reveal() bool {
	if t == nil || t.Revealed {
		return false
	}
	t.Revealed = true
	return true
}

// normalize restores the terrain/encounter invariant
func (t *Tile) normalize() {
	switch {
	case t.Encounter != nil:
		t.Terrain = TerrainEncounter
	case t.Terrain == TerrainEncounter:
		t.Terrain = TerrainEmpty
	}
	t.Barriers.normalize()
}
