package gameplay

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/path"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/telemetry"
)

// HoverHint is what a hover over a tile would lead to if it were clicked
type HoverHint struct {
	Target hex.Coord

	// CanMove is true if a click would walk there or open its encounter
	CanMove bool

	// Path and Cost are set for walkable targets
	Path path.Path
	Cost int

	// Encounter is true for an adjacent encounter; Kind says which
	Encounter bool
	Kind      world.EncounterKind
}

// OnHoverTile computes the move hint for c. It never changes state.
func (d *Dispatcher) OnHoverTile(ctx context.Context, c hex.Coord) HoverHint {
	_, span := d.tracer.Start(ctx, "dispatch.hover", trace.WithAttributes(telemetry.CoordAttrs(c)...))
	defer span.End()

	hint := HoverHint{Target: c}
	if d.Busy() {
		return hint
	}
	tile := d.game.Tiles.Get(c)
	if tile == nil || !tile.Revealed {
		return hint
	}

	if tile.HasEncounter() {
		if d.canReachEncounter(c) {
			hint.CanMove = true
			hint.Encounter = true
			hint.Kind = tile.Encounter.EffectiveKind()
		}
		return hint
	}

	p, ok := path.FindPath(d.game.Tiles, d.game.Pawn.Pos, c)
	if !ok || p.Steps() < 1 {
		return hint
	}
	hint.CanMove = true
	hint.Path = p
	hint.Cost = p.Cost()
	return hint
}
