package gameplay

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/path"
	"hexcrawl/pkg/logger"
	"hexcrawl/pkg/telemetry"
)

// walk moves the pawn along p one hex at a time, waiting for each step
// animation, then reveals around the goal. The cost is already paid, so the
// walk always runs to the end: caller cancellation does not stop it.
func (d *Dispatcher) walk(ctx context.Context, p path.Path) Outcome {
	goal := p.Goal()
	ctx, span := d.tracer.Start(ctx, "movement.walk",
		trace.WithAttributes(telemetry.CoordAttrs(goal)...),
		trace.WithAttributes(attribute.Int("path.steps", p.Steps()), attribute.Int("move.cost", p.Cost())),
	)
	defer span.End()

	log := logger.Log.WithFields(coordFields(goal)).WithField("steps", p.Steps()).WithField("cost", p.Cost())
	log.Debug("walk started")

	d.game.Machine.BeginWalk()
	stepCtx := context.WithoutCancel(ctx)
	for i := 1; i < len(p); i++ {
		d.step(stepCtx, p[i-1], p[i])
	}
	d.game.Machine.Idle()
	log.Debug("walk finished")

	onExit := d.game.Tiles.Get(goal).IsExit()
	d.reveal.RevealNeighbors(goal)
	if d.maybeAmbush(ctx) {
		// The exit is reported when the fight ends
		d.exitPending = onExit
		return OutcomeAmbushed
	}
	if onExit {
		log.Info("exit reached")
		return OutcomeExitReached
	}
	return OutcomeMoved
}

// step moves the pawn one hex and waits for the presenter. A failed
// animation is logged; the pawn has moved regardless.
func (d *Dispatcher) step(ctx context.Context, from, to hex.Coord) {
	d.game.Pawn.MoveTo(to)
	log := logger.Log.WithFields(coordFields(to))
	if dir, ok := hex.DirectionTo(from, to); ok {
		log = log.WithField("dir", dir)
	}
	log.Debug("pawn step")
	if err := d.present.OnPawnStep(ctx, from, to); err != nil {
		log.WithError(err).Warn("pawn step animation failed")
	}
}

// arrive moves the pawn onto the just-cleared tile at c: anything timid left
// behind flees, the step is animated and the new surroundings are revealed
func (d *Dispatcher) arrive(ctx context.Context, c hex.Coord) {
	from := d.game.Pawn.Pos
	d.cull(c)
	if from != c {
		d.game.Machine.BeginWalk()
		d.step(context.WithoutCancel(ctx), from, c)
		d.game.Machine.Idle()
	}
	d.reveal.RevealNeighbors(c)
}
