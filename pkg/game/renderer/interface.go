package renderer

import (
	"context"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// Presenter is the rendering, animation and modal collaborator the gameplay
// core talks to. Implementations can include TUI (terminal), GUI, or a
// recording fake in tests.
//
// The two context-taking calls are suspend points: they must not return until
// the step animation has finished or the player has acknowledged the warning.
type Presenter interface {
	// OnTileRevealed is called once when a tile leaves the fog of war
	OnTileRevealed(c hex.Coord)

	// OnPawnStep animates the pawn moving one hex and waits for it to finish
	OnPawnStep(ctx context.Context, from, to hex.Coord) error

	// OnEncounterOpen shows a simple, choice or combat encounter
	OnEncounterOpen(c hex.Coord, enc *world.Encounter, kind world.EncounterKind)

	// OnEncounterCleared is called when an encounter is removed from a tile,
	// whether it was beaten, completed or fled
	OnEncounterCleared(c hex.Coord)

	// OnAmbushWarning shows a blocking warning and waits for acknowledgment
	OnAmbushWarning(ctx context.Context, enemyName string) error

	// OnBarrierChanged reports a tile's barrier stack after it changed
	OnBarrierChanged(c hex.Coord, stack world.BarrierStack)
}

// Spender is the resource collaborator that pays for movement. Spend must
// either take the whole amount or return an error and take nothing.
type Spender interface {
	Spend(units int) error
}

// Nop is a Presenter that does nothing and never blocks
type Nop struct{}

// OnTileRevealed implements Presenter
func (Nop) OnTileRevealed(hex.Coord) {}

// OnPawnStep implements Presenter
func (Nop) OnPawnStep(context.Context, hex.Coord, hex.Coord) error { return nil }

// OnEncounterOpen implements Presenter
func (Nop) OnEncounterOpen(hex.Coord, *world.Encounter, world.EncounterKind) {}

// OnEncounterCleared implements Presenter
func (Nop) OnEncounterCleared(hex.Coord) {}

// OnAmbushWarning implements Presenter
func (Nop) OnAmbushWarning(context.Context, string) error { return nil }

// OnBarrierChanged implements Presenter
func (Nop) OnBarrierChanged(hex.Coord, world.BarrierStack) {}

// FreeMovement is a Spender that never charges
type FreeMovement struct{}

// Spend implements Spender
func (FreeMovement) Spend(int) error { return nil }
