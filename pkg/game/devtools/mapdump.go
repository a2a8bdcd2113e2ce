// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/reveal"
	"hexcrawl/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile (no pawn overlay).
// If revealedOnly is true, hidden tiles return '#'; otherwise they show their type.
func tileSymbol(t *world.Tile, revealedOnly bool) rune {
	if t == nil {
		return ' '
	}
	if revealedOnly && !t.Revealed {
		return '#'
	}
	switch {
	case t.HasEncounter():
		switch {
		case t.Encounter.IsAggressiveCombat():
			return 'A'
		case t.Encounter.HasTimidTag():
			return 't'
		case t.Encounter.IsCombat():
			return 'C'
		case t.Encounter.IsChoice():
			return '?'
		default:
			return 'S'
		}
	case t.Terrain == world.TerrainBlocked || !t.Passable:
		return 'X'
	case t.IsExit():
		return 'E'
	case !t.Barriers.Empty():
		return rune('0' + t.Barriers.Len())
	default:
		return '.'
	}
}

// writeMapGrid writes the map row by row with the pawn overlaid. Odd
// columns sit half a row lower; each map row is printed as two lines.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	ext := g.Tiles.Extent()
	for row := 0; row < ext.Rows; row++ {
		for half := 0; half < 2; half++ {
			for col := 0; col < ext.Cols; col++ {
				if col&1 != half {
					fmt.Fprint(w, "  ")
					continue
				}
				c := hex.At(col, row)
				if g.Pawn.Placed && g.Pawn.Pos == c {
					fmt.Fprint(w, "@ ")
					continue
				}
				fmt.Fprintf(w, "%c ", tileSymbol(g.Tiles.Get(c), revealedOnly))
			}
			fmt.Fprintln(w)
		}
	}
}

// DumpMap writes a full debug dump: metadata, legend, revealed-only map,
// fully revealed map, encounter list and pending reveal state.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, g *state.Game, eng *reveal.Engine) {
	ext := g.Tiles.Extent()

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, encounters, reveal state) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "stage: %d\n", g.Stage)
	fmt.Fprintf(w, "grid_cols: %d\n", ext.Cols)
	fmt.Fprintf(w, "grid_rows: %d\n", ext.Rows)
	fmt.Fprintf(w, "coordinate_system: col,row (0-based, odd columns shifted down)\n")
	fmt.Fprintf(w, "pawn_placed: %v\n", g.Pawn.Placed)
	fmt.Fprintf(w, "pawn: %d,%d\n", g.Pawn.Pos.Col, g.Pawn.Pos.Row)
	fmt.Fprintf(w, "phase: %s\n", g.Machine.Phase())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintln(w, ". = empty  # = hidden  X = blocked  E = exit  S = simple  ? = choice  C = combat  t = timid combat  A = aggressive combat  1-3 = barriers  @ = pawn")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed tiles only; hidden = #) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Encounters (all with col,row and state) ---")
	g.Tiles.ForEachTile(func(t *world.Tile) {
		if !t.HasEncounter() {
			return
		}
		e := t.Encounter
		fmt.Fprintf(w, "  col: %d row: %d id: %q kind: %s aggressive: %v timid: %v enemy: %q revealed: %v\n",
			t.Coord.Col, t.Coord.Row, e.ID, e.EffectiveKind(), e.Aggressive, e.HasTimidTag(), e.FirstEnemyName(), t.Revealed)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Barriers ---")
	g.Tiles.ForEachTile(func(t *world.Tile) {
		if t.Barriers.Empty() {
			return
		}
		fmt.Fprintf(w, "  col: %d row: %d stack: %v revealed: %v\n", t.Coord.Col, t.Coord.Row, []int(t.Barriers), t.Revealed)
	})
	fmt.Fprintln(w, "")

	if eng != nil {
		fmt.Fprintln(w, "--- Reveal state ---")
		fmt.Fprintf(w, "pending_timid: %v\n", eng.PendingTimid())
		if c, ok := eng.PendingAggressive(); ok {
			fmt.Fprintf(w, "pending_aggressive: %v\n", c)
		} else {
			fmt.Fprintln(w, "pending_aggressive: none")
		}
	}
}

// DumpMapToFile writes DumpMap to map.txt in the working directory and
// returns its absolute path
func DumpMapToFile(g *state.Game, eng *reveal.Engine) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpMap(f, g, eng)
	return absPath, nil
}
