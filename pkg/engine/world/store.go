package world

import (
	"errors"
	"fmt"

	"hexcrawl/pkg/engine/hex"
)

// ErrInvalidStore is wrapped by every Validate failure
var ErrInvalidStore = errors.New("invalid tile store")

// Store owns the tile records of one map, keyed by coordinate.
// A coordinate with no record does not exist; it is never implicitly empty.
type Store struct {
	tiles  map[hex.Coord]*Tile
	order  []hex.Coord
	extent hex.Extent
}

// NewStore creates an empty store. A zero extent means unbounded.
func NewStore(extent hex.Extent) *Store {
	return &Store{
		tiles:  make(map[hex.Coord]*Tile),
		extent: extent,
	}
}

// Extent returns the grid bounds the store was created with
func (s *Store) Extent() hex.Extent {
	return s.extent
}

// Len returns the number of tiles in the store
func (s *Store) Len() int {
	return len(s.tiles)
}

// InBounds checks if a coordinate lies inside the store's extent
func (s *Store) InBounds(c hex.Coord) bool {
	if s.extent.Area() == 0 {
		return true
	}
	return s.extent.Contains(c)
}

// Get returns the tile at the given coordinate, or nil if there is none
func (s *Store) Get(c hex.Coord) *Tile {
	if s == nil || s.tiles == nil {
		return nil
	}
	return s.tiles[c]
}

// Has returns true if a tile exists at the coordinate
func (s *Store) Has(c hex.Coord) bool {
	return s.Get(c) != nil
}

// Set inserts or replaces the tile at c. The record's Coord is overwritten
// with c and its terrain/encounter invariant is restored. Returns false if
// the record is nil or c is outside the extent.
func (s *Store) Set(c hex.Coord, t *Tile) bool {
	if t == nil || !s.InBounds(c) {
		return false
	}
	if s.tiles == nil {
		s.tiles = make(map[hex.Coord]*Tile)
	}
	t.Coord = c
	t.normalize()
	if _, found := s.tiles[c]; !found {
		s.order = append(s.order, c)
	}
	s.tiles[c] = t
	return true
}

// NeighborsOf returns the existing tiles adjacent to c, in direction order.
// Coordinates with no tile are silently omitted.
func (s *Store) NeighborsOf(c hex.Coord) []*Tile {
	neighbors := make([]*Tile, 0, 6)
	for _, n := range hex.Neighbors(c) {
		if t := s.Get(n); t != nil {
			neighbors = append(neighbors, t)
		}
	}
	return neighbors
}

// ForEachTile iterates over all tiles in insertion order
func (s *Store) ForEachTile(fn func(t *Tile)) {
	if s == nil {
		return
	}
	for _, c := range s.order {
		fn(s.tiles[c])
	}
}

// Clear drops every tile so the store can be rebuilt for the next stage
func (s *Store) Clear() {
	s.tiles = make(map[hex.Coord]*Tile)
	s.order = nil
}

// Reset clears the store and adopts a new extent
func (s *Store) Reset(extent hex.Extent) {
	s.Clear()
	s.extent = extent
}

// Validate checks the store for common issues and returns nil if it is valid
func (s *Store) Validate() error {
	if len(s.tiles) == 0 {
		return fmt.Errorf("%w: no tiles", ErrInvalidStore)
	}
	for c, t := range s.tiles {
		if t.Coord != c {
			return fmt.Errorf("%w: tile %v stored under %v", ErrInvalidStore, t.Coord, c)
		}
		if (t.Terrain == TerrainEncounter) != (t.Encounter != nil) {
			return fmt.Errorf("%w: tile %v has mismatched terrain and encounter", ErrInvalidStore, c)
		}
		if t.Barriers.Len() > MaxBarriers {
			return fmt.Errorf("%w: tile %v has too many barriers", ErrInvalidStore, c)
		}
	}
	return nil
}
