// Package gameplay provides the core exploration rules: what a click means,
// walking the pawn, encounters, ambushes and barrier decay.
package gameplay

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/path"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/renderer"
	"hexcrawl/pkg/game/reveal"
	"hexcrawl/pkg/game/state"
	"hexcrawl/pkg/logger"
	"hexcrawl/pkg/telemetry"
)

// Outcome reports what an inbound call did. None of these are errors: every
// failure degrades to "no state change".
type Outcome int

// Outcomes
const (
	OutcomeIgnored Outcome = iota // busy, or nothing to act on
	OutcomeBlocked                // hidden, missing or unreachable-by-click tile
	OutcomeNoPath                 // walkable goal with no route, or already there
	OutcomeRefused                // the movement cost could not be paid
	OutcomeMoved
	OutcomeExitReached
	OutcomeEncounterOpened
	OutcomeCombatOpened
	OutcomeAmbushed
	OutcomeCombatWon
	OutcomeCombatLost
	OutcomeEncounterCompleted
	OutcomeEncounterDismissed
)

// String returns a human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeNoPath:
		return "no_path"
	case OutcomeRefused:
		return "refused"
	case OutcomeMoved:
		return "moved"
	case OutcomeExitReached:
		return "exit_reached"
	case OutcomeEncounterOpened:
		return "encounter_opened"
	case OutcomeCombatOpened:
		return "combat_opened"
	case OutcomeAmbushed:
		return "ambushed"
	case OutcomeCombatWon:
		return "combat_won"
	case OutcomeCombatLost:
		return "combat_lost"
	case OutcomeEncounterCompleted:
		return "encounter_completed"
	case OutcomeEncounterDismissed:
		return "encounter_dismissed"
	default:
		return "unknown"
	}
}

// Dispatcher is the encounter state machine. The tile store, pawn and
// machine live in the state.Game it was given. Not safe for concurrent use:
// the host delivers every inbound call from one event loop.
type Dispatcher struct {
	game    *state.Game
	reveal  *reveal.Engine
	present renderer.Presenter
	spender renderer.Spender
	tracer  trace.Tracer

	// set when a walk ended on an exit but an ambush fired first
	exitPending bool
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithSpender sets the collaborator that pays for movement
func WithSpender(s renderer.Spender) Option {
	return func(d *Dispatcher) {
		d.spender = s
	}
}

// WithTracer sets the tracer used for dispatcher spans
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = t
	}
}

// NewDispatcher creates a dispatcher over a game. A nil presenter is
// replaced with renderer.Nop; movement is free unless WithSpender is given.
func NewDispatcher(g *state.Game, p renderer.Presenter, opts ...Option) *Dispatcher {
	if p == nil {
		p = renderer.Nop{}
	}
	d := &Dispatcher{
		game:    g,
		present: p,
		spender: renderer.FreeMovement{},
		tracer:  telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reveal = reveal.New(g.Tiles, p.OnTileRevealed)
	return d
}

// Game returns the state the dispatcher drives
func (d *Dispatcher) Game() *state.Game {
	return d.game
}

// Reveal returns the reveal engine, for hosts that show pending state
func (d *Dispatcher) Reveal() *reveal.Engine {
	return d.reveal
}

// Busy is the input gate: hosts should not forward clicks while it is true
func (d *Dispatcher) Busy() bool {
	return d.game.Machine.Busy()
}

// Start places the pawn on c, reveals it and its neighbors, and runs an
// ambush if one of them qualifies
func (d *Dispatcher) Start(ctx context.Context, c hex.Coord) Outcome {
	d.reveal.Reset()
	d.game.Machine.Reset()
	d.exitPending = false
	d.game.Pawn.MoveTo(c)
	d.reveal.Reveal(c)
	d.reveal.RevealNeighbors(c)
	logger.Log.WithFields(coordFields(c)).Info("pawn placed")
	if d.maybeAmbush(ctx) {
		return OutcomeAmbushed
	}
	return OutcomeMoved
}

// OnTileClicked decides what a click on c means and acts on it
func (d *Dispatcher) OnTileClicked(ctx context.Context, c hex.Coord) Outcome {
	if d.Busy() {
		logger.Log.WithFields(coordFields(c)).WithField("state", d.game.Machine.Phase()).Debug("input ignored while busy")
		return OutcomeIgnored
	}

	ctx, span := d.tracer.Start(ctx, "dispatch.click", trace.WithAttributes(telemetry.CoordAttrs(c)...))
	defer span.End()

	out := d.click(ctx, c)
	span.SetAttributes(attribute.String("outcome", out.String()))
	return out
}

func (d *Dispatcher) click(ctx context.Context, c hex.Coord) Outcome {
	tile := d.game.Tiles.Get(c)
	if tile == nil || !tile.Revealed {
		return OutcomeBlocked
	}

	if tile.HasEncounter() {
		if !d.canReachEncounter(c) {
			return OutcomeBlocked
		}
		return d.openEncounter(c, tile.Encounter)
	}

	p, ok := path.FindPath(d.game.Tiles, d.game.Pawn.Pos, c)
	if !ok || p.Steps() < 1 {
		return OutcomeNoPath
	}

	cost := p.Cost()
	if err := d.spender.Spend(cost); err != nil {
		logger.Log.WithFields(coordFields(c)).WithField("cost", cost).WithError(err).Info("move refused")
		return OutcomeRefused
	}

	d.cull(c)
	return d.walk(ctx, p)
}

// canReachEncounter reports whether the pawn stands next to the encounter at c
func (d *Dispatcher) canReachEncounter(c hex.Coord) bool {
	return d.game.Pawn.Placed && hex.IsAdjacent(d.game.Pawn.Pos, c)
}

// openEncounter routes a clicked encounter by its effective kind
func (d *Dispatcher) openEncounter(c hex.Coord, enc *world.Encounter) Outcome {
	// Anything timid except c flees, whatever kind c is
	d.cull(c)
	kind := enc.EffectiveKind()
	if kind == world.KindCombat {
		d.reveal.Engage(c)
		d.openCombat(c, enc, false)
		return OutcomeCombatOpened
	}

	d.game.Machine.OpenEncounter(c)
	logger.Log.WithFields(coordFields(c)).WithField("kind", kind).Info("encounter opened")
	d.present.OnEncounterOpen(c, enc, kind)
	return OutcomeEncounterOpened
}

func (d *Dispatcher) openCombat(c hex.Coord, enc *world.Encounter, suppressCleanup bool) {
	d.game.Machine.OpenCombat(c, suppressCleanup)
	logger.Log.WithFields(coordFields(c)).WithField("enemy", enc.FirstEnemyName()).Info("combat opened")
	d.present.OnEncounterOpen(c, enc, world.KindCombat)
}

// cull makes every pending timid encounter except the one at keep flee
func (d *Dispatcher) cull(keep hex.Coord) {
	for _, c := range d.reveal.CullPendingTimid(reveal.Some(keep)) {
		d.present.OnEncounterCleared(c)
	}
}

// OnCombatEnded resolves the running combat. A win clears the tile, moves
// the pawn onto it and decays nearby barriers, unless cleanup was suppressed
// for this combat. A loss leaves the tile and encounter untouched.
// If the fight was an ambush on arrival at an exit and the pawn is still
// standing there, OutcomeExitReached is returned instead.
func (d *Dispatcher) OnCombatEnded(ctx context.Context, won bool) Outcome {
	if d.game.Machine.Phase() != state.PhaseCombatRunning {
		return OutcomeIgnored
	}
	return d.settleExit(d.endCombat(ctx, won))
}

func (d *Dispatcher) endCombat(ctx context.Context, won bool) Outcome {
	m := &d.game.Machine
	c, _ := m.Active()
	suppress := m.TakeSuppressCleanup()
	m.Idle()

	ctx, span := d.tracer.Start(ctx, "encounter.combat_ended", trace.WithAttributes(telemetry.CoordAttrs(c)...))
	defer span.End()
	span.SetAttributes(attribute.Bool("combat.won", won), attribute.Bool("combat.suppress_cleanup", suppress))

	log := logger.Log.WithFields(coordFields(c))
	if !won {
		log.Info("combat lost")
		return OutcomeCombatLost
	}
	log.WithField("suppress_cleanup", suppress).Info("combat won")

	d.PopOneBarrierOnNeighbors(c)
	if suppress {
		return OutcomeCombatWon
	}
	d.clearAndArrive(ctx, c)
	if d.maybeAmbush(ctx) {
		return OutcomeAmbushed
	}
	return OutcomeCombatWon
}

// OnEncounterResolved closes an open simple or choice encounter. A completed
// encounter is cleared, the pawn moves onto it and nearby barriers decay; a
// dismissed one is left in place.
func (d *Dispatcher) OnEncounterResolved(ctx context.Context, completed bool) Outcome {
	m := &d.game.Machine
	if m.Phase() != state.PhaseEncounterOpen {
		return OutcomeIgnored
	}
	c, _ := m.Active()
	m.Idle()

	if !completed {
		logger.Log.WithFields(coordFields(c)).Debug("encounter dismissed")
		return OutcomeEncounterDismissed
	}
	logger.Log.WithFields(coordFields(c)).Info("encounter completed")

	d.PopOneBarrierOnNeighbors(c)
	d.clearAndArrive(ctx, c)
	if d.maybeAmbush(ctx) {
		return OutcomeAmbushed
	}
	return OutcomeEncounterCompleted
}

// settleExit reports a deferred exit once the pawn is free to leave. The
// flag is dropped as soon as the machine is idle, whether or not the pawn
// is still on the exit.
func (d *Dispatcher) settleExit(out Outcome) Outcome {
	if !d.exitPending || d.Busy() {
		return out
	}
	d.exitPending = false
	if t := d.game.Tiles.Get(d.game.Pawn.Pos); t != nil && t.IsExit() {
		logger.Log.WithFields(coordFields(d.game.Pawn.Pos)).WithField("combat", out).Info("exit reached after ambush")
		return OutcomeExitReached
	}
	return out
}

// clearAndArrive removes the encounter at c and steps the pawn onto it
func (d *Dispatcher) clearAndArrive(ctx context.Context, c hex.Coord) {
	if tile := d.game.Tiles.Get(c); tile != nil && tile.HasEncounter() {
		tile.ClearEncounter()
		d.present.OnEncounterCleared(c)
	}
	d.arrive(ctx, c)
}

func coordFields(c hex.Coord) logrus.Fields {
	return logrus.Fields{"col": c.Col, "row": c.Row}
}
