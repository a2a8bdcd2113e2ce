// Package path finds routes across the known-safe part of a hex map.
package path

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// HexesPerMoveUnit is how many hexes one unit of movement resource pays for
const HexesPerMoveUnit = 3

// Path is an ordered walk across adjacent hexes. The first element is where
// the walk starts (the pawn), so a valid path always has at least one entry.
type Path []hex.Coord

// Start returns the first coordinate of the path
func (p Path) Start() hex.Coord {
	return p[0]
}

// Goal returns the last coordinate of the path
func (p Path) Goal() hex.Coord {
	return p[len(p)-1]
}

// Steps returns the number of hexes walked, not counting the start
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Cost returns the movement resource needed to walk the path
func (p Path) Cost() int {
	return ComputeMoveCost(p.Steps())
}

// ComputeMoveCost returns the movement resource charged for a walk of the given
// number of steps: one unit per started batch of HexesPerMoveUnit hexes.
func ComputeMoveCost(steps int) int {
	if steps <= 0 {
		return 0
	}
	return (steps + HexesPerMoveUnit - 1) / HexesPerMoveUnit
}

// IsWalkable returns true if a path may pass through or end on the tile.
// Encounter and blocked tiles are never part of a walk; encounters are entered
// by clicking them directly from an adjacent hex.
func IsWalkable(t *world.Tile) bool {
	if t == nil || !t.Revealed || !t.Passable {
		return false
	}
	return t.Terrain == world.TerrainEmpty || t.Terrain == world.TerrainExit
}

// FindPath returns the shortest walk from start to goal over walkable tiles,
// or false if the goal is not walkable or cannot be reached. The start tile
// itself is not checked.
func FindPath(store *world.Store, start, goal hex.Coord) (Path, bool) {
	if !IsWalkable(store.Get(goal)) {
		return nil, false
	}
	if start == goal {
		return Path{start}, true
	}

	parents := make(map[hex.Coord]hex.Coord)
	visited := mapset.New[hex.Coord]()
	visited.Put(start)
	frontier := queue.New[hex.Coord]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range store.NeighborsOf(current) {
			if visited.Has(n.Coord) || !IsWalkable(n) {
				continue
			}
			visited.Put(n.Coord)
			parents[n.Coord] = current
			if n.Coord == goal {
				return unwind(parents, start, goal), true
			}
			frontier.Enqueue(n.Coord)
		}
	}

	return nil, false
}

// unwind rebuilds the path from the BFS parent links
func unwind(parents map[hex.Coord]hex.Coord, start, goal hex.Coord) Path {
	p := Path{goal}
	for c := goal; c != start; {
		c = parents[c]
		p = append(p, c)
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Reachable returns every walkable coordinate reachable from start, start included
func Reachable(store *world.Store, start hex.Coord) []hex.Coord {
	reached := []hex.Coord{start}
	visited := mapset.New[hex.Coord]()
	visited.Put(start)
	frontier := queue.New[hex.Coord]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range store.NeighborsOf(current) {
			if visited.Has(n.Coord) || !IsWalkable(n) {
				continue
			}
			visited.Put(n.Coord)
			reached = append(reached, n.Coord)
			frontier.Enqueue(n.Coord)
		}
	}
	return reached
}
