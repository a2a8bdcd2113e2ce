// Package reveal implements the fog-of-war transition and the bookkeeping it
// triggers: timid encounters that may flee and aggressive encounters that ambush.
package reveal

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/logger"
)

// Slot holds at most one coordinate
type Slot struct {
	coord hex.Coord
	set   bool
}

// Some returns a filled slot
func Some(c hex.Coord) Slot {
	return Slot{coord: c, set: true}
}

// Get returns the coordinate and whether the slot is filled
func (s Slot) Get() (hex.Coord, bool) {
	return s.coord, s.set
}

// orderedSet is an insertion-ordered set of coordinates
type orderedSet struct {
	items []hex.Coord
	index mapset.Set[hex.Coord]
}

func newOrderedSet() orderedSet {
	return orderedSet{index: mapset.New[hex.Coord]()}
}

func (s *orderedSet) add(c hex.Coord) {
	if s.index.Has(c) {
		return
	}
	s.index.Put(c)
	s.items = append(s.items, c)
}

func (s *orderedSet) has(c hex.Coord) bool {
	return s.index.Has(c)
}

func (s *orderedSet) remove(c hex.Coord) bool {
	if !s.index.Has(c) {
		return false
	}
	s.index.Remove(c)
	for i, item := range s.items {
		if item == c {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

func (s *orderedSet) clear() {
	s.items = nil
	s.index = mapset.New[hex.Coord]()
}

// Engine reveals tiles and tracks the per-move pending encounter state
type Engine struct {
	tiles    *world.Store
	onReveal func(hex.Coord)

	timid      orderedSet
	aggressive Slot
}

// New creates a reveal engine over a tile store. onReveal, if not nil, is
// called once for every tile the first time it is revealed.
func New(tiles *world.Store, onReveal func(hex.Coord)) *Engine {
	return &Engine{
		tiles:    tiles,
		onReveal: onReveal,
		timid:    newOrderedSet(),
	}
}

// Reveal reveals the tile at c. Returns true only the first time; missing
// and already revealed tiles are a no-op.
func (e *Engine) Reveal(c hex.Coord) bool {
	t := e.tiles.Get(c)
	if !t.Reveal() {
		return false
	}
	if e.onReveal != nil {
		e.onReveal(c)
	}
	return true
}

// RevealNeighbors reveals every existing neighbor of c and returns the ones
// revealed for the first time. Newly revealed all-timid combat tiles join the
// pending-timid set; the first newly revealed aggressive combat tile becomes
// the pending ambush unless one is already waiting.
func (e *Engine) RevealNeighbors(c hex.Coord) []hex.Coord {
	var revealed []hex.Coord
	for _, n := range e.tiles.NeighborsOf(c) {
		if !e.Reveal(n.Coord) {
			continue
		}
		revealed = append(revealed, n.Coord)

		enc := n.Encounter
		if enc.HasTimidTag() {
			e.timid.add(n.Coord)
			logger.Log.WithFields(logrus.Fields{"col": n.Coord.Col, "row": n.Coord.Row}).Debug("timid encounter revealed")
		}
		if enc.IsAggressiveCombat() && !e.aggressive.set {
			e.aggressive = Some(n.Coord)
			logger.Log.WithFields(logrus.Fields{"col": n.Coord.Col, "row": n.Coord.Row}).Debug("aggressive encounter pending")
		}
	}
	return revealed
}

// PendingTimid returns the pending-timid coordinates in discovery order
func (e *Engine) PendingTimid() []hex.Coord {
	return append([]hex.Coord(nil), e.timid.items...)
}

// IsPendingTimid returns true if c is waiting to be culled
func (e *Engine) IsPendingTimid(c hex.Coord) bool {
	return e.timid.has(c)
}

// Engage takes c out of the pending-timid set without clearing it, because
// the player chose to fight it. Returns false if c was not pending.
func (e *Engine) Engage(c hex.Coord) bool {
	return e.timid.remove(c)
}

// CullPendingTimid clears the encounter of every pending-timid tile except
// the one held by except, and returns the culled coordinates. An empty
// slot culls them all.
func (e *Engine) CullPendingTimid(except Slot) []hex.Coord {
	skip, hasSkip := except.Get()
	var culled []hex.Coord
	for _, c := range e.PendingTimid() {
		if hasSkip && c == skip {
			continue
		}
		e.timid.remove(c)
		if t := e.tiles.Get(c); t != nil {
			t.ClearEncounter()
		}
		culled = append(culled, c)
	}
	if len(culled) > 0 {
		logger.Log.WithField("count", len(culled)).Debug("timid encounters fled")
	}
	return culled
}

// PendingAggressive returns the pending ambush tile, if any
func (e *Engine) PendingAggressive() (hex.Coord, bool) {
	return e.aggressive.Get()
}

// TakeAggressive returns the pending ambush tile and empties the slot
func (e *Engine) TakeAggressive() (hex.Coord, bool) {
	c, ok := e.aggressive.Get()
	e.aggressive = Slot{}
	return c, ok
}

// Reset drops all pending state, e.g. when the map is replaced
func (e *Engine) Reset() {
	e.timid.clear()
	e.aggressive = Slot{}
}
