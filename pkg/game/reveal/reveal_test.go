package reveal

import (
	"testing"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// makeHiddenStore creates a cols x rows store of hidden, passable, empty tiles
func makeHiddenStore(t *testing.T, cols, rows int) *world.Store {
	t.Helper()
	s := world.NewStore(hex.Extent{Cols: cols, Rows: rows})
	s.Extent().ForEach(func(c hex.Coord) {
		s.Set(c, world.NewTile(c, world.TerrainEmpty))
	})
	return s
}

func combat(id string, aggressive bool, enemies ...world.Enemy) *world.Encounter {
	return &world.Encounter{ID: id, Kind: world.KindCombat, Aggressive: aggressive, Enemies: enemies}
}

var (
	rabbit = world.Enemy{Name: "Rabbit", Tags: []string{world.TagTimid}}
	wolf   = world.Enemy{Name: "Wolf"}
	bandit = world.Enemy{Name: "Bandit"}
)

func TestReveal_OnceOnly(t *testing.T) {
	s := makeHiddenStore(t, 2, 2)
	var notified []hex.Coord
	e := New(s, func(c hex.Coord) { notified = append(notified, c) })

	if !e.Reveal(hex.At(0, 0)) {
		t.Error("first Reveal((0,0)) = false, want true")
	}
	if e.Reveal(hex.At(0, 0)) {
		t.Error("second Reveal((0,0)) = true, want false")
	}
	if e.Reveal(hex.At(9, 9)) {
		t.Error("Reveal of missing tile = true, want false")
	}
	if len(notified) != 1 {
		t.Errorf("onReveal called %d times, want 1", len(notified))
	}
}

func TestRevealNeighbors_MonotonicAndReportsNewOnly(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	e := New(s, nil)
	first := e.RevealNeighbors(hex.At(1, 1))
	if len(first) != 6 {
		t.Errorf("first RevealNeighbors((1,1)) revealed %d, want 6", len(first))
	}
	second := e.RevealNeighbors(hex.At(1, 1))
	if len(second) != 0 {
		t.Errorf("second RevealNeighbors((1,1)) revealed %v, want none", second)
	}
	for _, c := range first {
		if !s.Get(c).Revealed {
			t.Errorf("%v reported revealed but Revealed = false", c)
		}
	}
	if s.Get(hex.At(1, 1)).Revealed {
		t.Error("RevealNeighbors revealed the center tile")
	}
}

func TestRevealNeighbors_TimidBecomesPending(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	s.Get(hex.At(2, 2)).SetEncounter(combat("rabbits", false, rabbit))
	e := New(s, nil)

	e.RevealNeighbors(hex.At(1, 1))
	if !e.IsPendingTimid(hex.At(2, 2)) {
		t.Fatal("(2,2) not pending-timid after reveal")
	}

	if kept := e.CullPendingTimid(Some(hex.At(2, 2))); len(kept) != 0 {
		t.Errorf("CullPendingTimid(Some((2,2))) = %v, want none", kept)
	}
	culled := e.CullPendingTimid(Slot{})
	if len(culled) != 1 || culled[0] != hex.At(2, 2) {
		t.Errorf("CullPendingTimid(Slot{}) = %v, want [(2,2)]", culled)
	}
	tile := s.Get(hex.At(2, 2))
	if tile.Terrain != world.TerrainEmpty || tile.Encounter != nil {
		t.Errorf("culled tile Terrain = %v, Encounter = %v, want Empty, nil", tile.Terrain, tile.Encounter)
	}
	if !tile.Revealed {
		t.Error("culled tile lost its Revealed flag")
	}
	if e.IsPendingTimid(hex.At(2, 2)) {
		t.Error("(2,2) still pending after cull")
	}
}

func TestRevealNeighbors_MixedTimidIsNotPending(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	s.Get(hex.At(2, 2)).SetEncounter(combat("pack", false, rabbit, wolf))
	e := New(s, nil)
	e.RevealNeighbors(hex.At(1, 1))
	if e.IsPendingTimid(hex.At(2, 2)) {
		t.Error("encounter with a non-timid enemy became pending-timid")
	}
}

func TestEngage_CancelsCull(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	s.Get(hex.At(2, 2)).SetEncounter(combat("rabbits", false, rabbit))
	s.Get(hex.At(0, 1)).SetEncounter(combat("hares", false, rabbit))
	e := New(s, nil)
	e.RevealNeighbors(hex.At(1, 1))

	if got := e.PendingTimid(); len(got) != 2 {
		t.Fatalf("PendingTimid() = %v, want two entries", got)
	}

	// Player clicks (2,2): everything else flees, (2,2) stays to be fought
	culled := e.CullPendingTimid(Some(hex.At(2, 2)))
	if len(culled) != 1 || culled[0] != hex.At(0, 1) {
		t.Errorf("CullPendingTimid(except (2,2)) = %v, want [(0,1)]", culled)
	}
	if !e.Engage(hex.At(2, 2)) {
		t.Error("Engage((2,2)) = false, want true")
	}
	if !s.Get(hex.At(2, 2)).HasEncounter() {
		t.Error("engaged tile lost its encounter")
	}
	if len(e.PendingTimid()) != 0 {
		t.Errorf("PendingTimid() = %v, want empty", e.PendingTimid())
	}
	if e.Engage(hex.At(2, 2)) {
		t.Error("second Engage((2,2)) = true, want false")
	}
}

func TestRevealNeighbors_FirstAggressiveWins(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	// Direction order from (1,1): N (1,0) comes before SE (2,2)
	s.Get(hex.At(1, 0)).SetEncounter(combat("wolves", true, wolf))
	s.Get(hex.At(2, 2)).SetEncounter(combat("bandits", true, bandit))
	e := New(s, nil)

	e.RevealNeighbors(hex.At(1, 1))
	c, ok := e.PendingAggressive()
	if !ok || c != hex.At(1, 0) {
		t.Fatalf("PendingAggressive() = %v, %v, want (1,0), true", c, ok)
	}

	// A later batch doesn't displace the waiting ambush
	s.Get(hex.At(0, 0)).Revealed = false
	s.Get(hex.At(0, 0)).SetEncounter(combat("ogre", true, world.Enemy{Name: "Ogre"}))
	e.RevealNeighbors(hex.At(0, 1))
	if c, _ := e.PendingAggressive(); c != hex.At(1, 0) {
		t.Errorf("PendingAggressive() = %v after second batch, want (1,0)", c)
	}

	taken, ok := e.TakeAggressive()
	if !ok || taken != hex.At(1, 0) {
		t.Errorf("TakeAggressive() = %v, %v, want (1,0), true", taken, ok)
	}
	if _, ok := e.PendingAggressive(); ok {
		t.Error("PendingAggressive() still set after TakeAggressive")
	}
	if !s.Get(hex.At(2, 2)).HasEncounter() {
		t.Error("second aggressive tile lost its encounter; it should stay an ordinary combat tile")
	}
}

func TestRevealNeighbors_AggressiveWithoutEnemiesIgnored(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	s.Get(hex.At(2, 2)).SetEncounter(combat("empty", true))
	e := New(s, nil)
	e.RevealNeighbors(hex.At(1, 1))
	if _, ok := e.PendingAggressive(); ok {
		t.Error("combat without enemies became a pending ambush")
	}
}

func TestReset(t *testing.T) {
	s := makeHiddenStore(t, 3, 3)
	s.Get(hex.At(2, 2)).SetEncounter(combat("rabbits", false, rabbit))
	s.Get(hex.At(1, 0)).SetEncounter(combat("wolves", true, wolf))
	e := New(s, nil)
	e.RevealNeighbors(hex.At(1, 1))
	e.Reset()
	if len(e.PendingTimid()) != 0 {
		t.Error("PendingTimid() not empty after Reset")
	}
	if _, ok := e.PendingAggressive(); ok {
		t.Error("PendingAggressive() set after Reset")
	}
	if !s.Get(hex.At(2, 2)).HasEncounter() {
		t.Error("Reset cleared a tile's encounter")
	}
}
