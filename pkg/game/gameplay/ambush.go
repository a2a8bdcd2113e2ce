package gameplay

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/game/state"
	"hexcrawl/pkg/logger"
	"hexcrawl/pkg/telemetry"
)

// maybeAmbush runs the deferred ambush if a reveal left one pending and no
// combat is running. Only one ambush fires; the slot is emptied either way.
// Returns true if combat was opened.
func (d *Dispatcher) maybeAmbush(ctx context.Context) bool {
	if _, ok := d.reveal.PendingAggressive(); !ok {
		return false
	}
	if d.game.Machine.Phase() == state.PhaseCombatRunning {
		return false
	}
	c, _ := d.reveal.TakeAggressive()

	tile := d.game.Tiles.Get(c)
	if tile == nil || !tile.Encounter.IsAggressiveCombat() {
		// Cleared or rewritten since it was revealed
		return false
	}
	enc := tile.Encounter
	enemy := enc.FirstEnemyName()

	ctx, span := d.tracer.Start(ctx, "encounter.ambush",
		trace.WithAttributes(telemetry.CoordAttrs(c)...),
		trace.WithAttributes(attribute.String("enemy", enemy)),
	)
	defer span.End()

	// Gate input for the warning as well as the fight
	d.game.Machine.OpenCombat(c, false)
	d.reveal.Engage(c)
	logger.Log.WithFields(coordFields(c)).WithField("enemy", enemy).Info("ambush")

	if err := d.present.OnAmbushWarning(context.WithoutCancel(ctx), enemy); err != nil {
		logger.Log.WithFields(coordFields(c)).WithError(err).Warn("ambush warning failed")
	}
	d.present.OnEncounterOpen(c, enc, enc.EffectiveKind())
	return true
}

// OpenCombatFromReward opens combat on c on behalf of the reward pipeline.
// The next OnCombatEnded leaves the tile for that pipeline to clean up.
func (d *Dispatcher) OpenCombatFromReward(ctx context.Context, c hex.Coord) Outcome {
	if d.Busy() {
		return OutcomeIgnored
	}
	tile := d.game.Tiles.Get(c)
	if tile == nil || !tile.Encounter.IsCombat() {
		return OutcomeBlocked
	}
	_, span := d.tracer.Start(ctx, "encounter.reward_combat", trace.WithAttributes(telemetry.CoordAttrs(c)...))
	defer span.End()

	d.reveal.Engage(c)
	d.openCombat(c, tile.Encounter, true)
	return OutcomeCombatOpened
}
