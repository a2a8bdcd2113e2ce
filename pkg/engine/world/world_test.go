package world

import (
	"errors"
	"strings"
	"testing"

	"hexcrawl/pkg/engine/hex"
)

// makeStore creates a fully populated cols x rows store of empty, passable tiles
func makeStore(t *testing.T, cols, rows int) *Store {
	t.Helper()
	s := NewStore(hex.Extent{Cols: cols, Rows: rows})
	s.Extent().ForEach(func(c hex.Coord) {
		if !s.Set(c, NewTile(c, TerrainEmpty)) {
			t.Fatalf("Set(%v) = false, want true", c)
		}
	})
	return s
}

func TestStore_GetMissingIsNil(t *testing.T) {
	s := makeStore(t, 2, 2)
	if got := s.Get(hex.At(5, 5)); got != nil {
		t.Errorf("Get((5,5)) = %v, want nil", got)
	}
	var nilStore *Store
	if got := nilStore.Get(hex.At(0, 0)); got != nil {
		t.Errorf("nil store Get = %v, want nil", got)
	}
}

func TestStore_SetUpsertsAndFixesCoord(t *testing.T) {
	s := makeStore(t, 2, 2)
	c := hex.At(1, 1)
	replacement := NewTile(hex.At(9, 9), TerrainExit)
	s.Set(c, replacement)
	if got := s.Get(c); got != replacement {
		t.Fatalf("Get(%v) = %v, want replacement", c, got)
	}
	if replacement.Coord != c {
		t.Errorf("replacement.Coord = %v, want %v", replacement.Coord, c)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4 after upsert", s.Len())
	}
}

func TestStore_SetOutsideExtent(t *testing.T) {
	s := makeStore(t, 2, 2)
	if s.Set(hex.At(2, 0), NewTile(hex.At(2, 0), TerrainEmpty)) {
		t.Error("Set outside extent = true, want false")
	}
	if s.Set(hex.At(0, 0), nil) {
		t.Error("Set(nil) = true, want false")
	}
}

func TestStore_NeighborsOfFiltersMissing(t *testing.T) {
	s := makeStore(t, 3, 3)
	if got := len(s.NeighborsOf(hex.At(1, 1))); got != 6 {
		t.Errorf("len(NeighborsOf((1,1))) = %d, want 6", got)
	}
	// (0,0) even column: only (1,0) and (0,1) exist
	corner := s.NeighborsOf(hex.At(0, 0))
	if len(corner) != 2 {
		t.Fatalf("len(NeighborsOf((0,0))) = %d, want 2", len(corner))
	}
	for _, n := range corner {
		if n == nil {
			t.Error("NeighborsOf returned a nil tile")
		}
	}
}

func TestStore_ClearAndValidate(t *testing.T) {
	s := makeStore(t, 2, 2)
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	s.Clear()
	if s.Len() != 0 || s.Has(hex.At(0, 0)) {
		t.Errorf("after Clear: Len() = %d, want 0", s.Len())
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidStore) {
		t.Errorf("Validate() on empty store = %v, want ErrInvalidStore", err)
	}
	count := 0
	s.ForEachTile(func(*Tile) { count++ })
	if count != 0 {
		t.Errorf("ForEachTile after Clear visited %d tiles, want 0", count)
	}
}

func TestTile_EncounterInvariant(t *testing.T) {
	tile := NewTile(hex.At(0, 0), TerrainEmpty)
	tile.SetEncounter(&Encounter{ID: "wolf", Kind: KindCombat, Enemies: []Enemy{{Name: "Wolf"}}})
	if tile.Terrain != TerrainEncounter {
		t.Errorf("after SetEncounter: Terrain = %v, want Encounter", tile.Terrain)
	}
	tile.ClearEncounter()
	if tile.Terrain != TerrainEmpty || tile.Encounter != nil {
		t.Errorf("after ClearEncounter: Terrain = %v, Encounter = %v, want Empty, nil", tile.Terrain, tile.Encounter)
	}

	// Set repairs a record that claims an encounter it doesn't have
	s := NewStore(hex.Extent{})
	broken := &Tile{Terrain: TerrainEncounter, Passable: true}
	s.Set(hex.At(4, 4), broken)
	if broken.Terrain != TerrainEmpty {
		t.Errorf("Set(encounter terrain without encounter): Terrain = %v, want Empty", broken.Terrain)
	}
}

func TestTile_RevealIsOneWay(t *testing.T) {
	tile := NewTile(hex.At(0, 0), TerrainEmpty)
	if !tile.Reveal() {
		t.Error("first Reveal() = false, want true")
	}
	if tile.Reveal() {
		t.Error("second Reveal() = true, want false")
	}
	if !tile.Revealed {
		t.Error("Revealed = false after Reveal")
	}
}

func TestBarrierStack_CapAndNormalize(t *testing.T) {
	var b BarrierStack
	for _, v := range []int{0, 2, 7, 3, 1} {
		b.Push(v)
	}
	if b.Len() != MaxBarriers {
		t.Fatalf("Len() = %d, want %d", b.Len(), MaxBarriers)
	}
	want := []int{1, 1, 3}
	for i, v := range b {
		if v != want[i] {
			t.Errorf("b[%d] = %d, want %d", i, v, want[i])
		}
	}

	front, ok := b.PopFront()
	if !ok || front != 1 {
		t.Errorf("PopFront() = %d, %v, want 1, true", front, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len() after PopFront = %d, want 2", b.Len())
	}

	var empty BarrierStack
	if _, ok := empty.PopFront(); ok {
		t.Error("PopFront() on empty stack = ok, want false")
	}
}

func TestBarrierStack_SetNormalizesOversizedStack(t *testing.T) {
	s := NewStore(hex.Extent{})
	tile := &Tile{Passable: true, Barriers: BarrierStack{5, 0, 3, 2}}
	s.Set(hex.At(0, 0), tile)
	if tile.Barriers.Len() != MaxBarriers {
		t.Fatalf("Barriers.Len() = %d, want %d", tile.Barriers.Len(), MaxBarriers)
	}
	for i, v := range tile.Barriers {
		if v != BarrierLight && v != BarrierHeavy {
			t.Errorf("Barriers[%d] = %d, want 1 or 3", i, v)
		}
	}
}

func TestEncounter_Flags(t *testing.T) {
	timid := Enemy{Name: "Rabbit", Tags: []string{TagTimid}}
	bold := Enemy{Name: "Bear"}
	tests := []struct {
		name       string
		enc        *Encounter
		combat     bool
		aggressive bool
		choice     bool
		timid      bool
		kind       EncounterKind
	}{
		{"nil", nil, false, false, false, false, KindSimple},
		{"simple", &Encounter{Kind: KindSimple}, false, false, false, false, KindSimple},
		{"choice", &Encounter{Kind: KindChoice}, false, false, true, false, KindChoice},
		{"combat", &Encounter{Kind: KindCombat, Enemies: []Enemy{bold}}, true, false, false, false, KindCombat},
		{"aggressive", &Encounter{Kind: KindCombat, Aggressive: true, Enemies: []Enemy{bold}}, true, true, false, false, KindCombat},
		{"all timid", &Encounter{Kind: KindCombat, Enemies: []Enemy{timid, timid}}, true, false, false, true, KindCombat},
		{"mixed timid", &Encounter{Kind: KindCombat, Enemies: []Enemy{timid, bold}}, true, false, false, false, KindCombat},
		{"combat without enemies", &Encounter{Kind: KindCombat, Aggressive: true}, false, false, false, false, KindSimple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.IsCombat(); got != tt.combat {
				t.Errorf("IsCombat() = %v, want %v", got, tt.combat)
			}
			if got := tt.enc.IsAggressiveCombat(); got != tt.aggressive {
				t.Errorf("IsAggressiveCombat() = %v, want %v", got, tt.aggressive)
			}
			if got := tt.enc.IsChoice(); got != tt.choice {
				t.Errorf("IsChoice() = %v, want %v", got, tt.choice)
			}
			if got := tt.enc.HasTimidTag(); got != tt.timid {
				t.Errorf("HasTimidTag() = %v, want %v", got, tt.timid)
			}
			if got := tt.enc.EffectiveKind(); got != tt.kind {
				t.Errorf("EffectiveKind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestStore_ValidateMismatchedEncounter(t *testing.T) {
	s := makeStore(t, 2, 1)
	s.Get(hex.At(1, 0)).Terrain = TerrainEncounter
	err := s.Validate()
	if !errors.Is(err, ErrInvalidStore) {
		t.Fatalf("Validate() = %v, want ErrInvalidStore", err)
	}
	if !strings.Contains(err.Error(), "(1,0)") {
		t.Errorf("Validate() = %q, want it to name (1,0)", err)
	}
}

func TestParseTerrain(t *testing.T) {
	tests := []struct {
		in   string
		want Terrain
		ok   bool
	}{
		{"Empty", TerrainEmpty, true},
		{"blocked", TerrainBlocked, true},
		{"EXIT", TerrainExit, true},
		{"encounter", TerrainEncounter, true},
		{"lava", TerrainEmpty, false},
		{"", TerrainEmpty, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTerrain(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseTerrain(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
