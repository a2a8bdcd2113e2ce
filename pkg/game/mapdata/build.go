package mapdata

import (
	"fmt"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// Fill adds a fresh tile of the given terrain at every coordinate of the
// store's extent that has none. Returns how many tiles were added.
func Fill(store *world.Store, terrain world.Terrain) int {
	added := 0
	store.Extent().ForEach(func(c hex.Coord) {
		if store.Has(c) {
			return
		}
		if store.Set(c, world.NewTile(c, terrain)) {
			added++
		}
	})
	return added
}

// Build creates a new store from a validated document
func Build(doc *Document) (*world.Store, error) {
	store := world.NewStore(doc.Extent())
	if err := BuildInto(store, doc); err != nil {
		return nil, err
	}
	return store, nil
}

// BuildInto replaces the contents of store with the document's map. Holders
// of the store pointer see the new map.
func BuildInto(store *world.Store, doc *Document) error {
	store.Reset(doc.Extent())
	for _, e := range doc.Tiles {
		terrain, err := entryTerrain(e)
		if err != nil {
			return fmt.Errorf("mapdata: build %s: %w", doc.Name, err)
		}
		t := world.NewTile(e.Coord(), terrain)
		if e.Passable != nil {
			t.Passable = *e.Passable
		}
		t.Revealed = e.Revealed
		for _, v := range e.Barriers {
			t.Barriers.Push(v)
		}
		if e.Encounter != nil {
			t.SetEncounter(toEncounter(e.Encounter))
		}
		store.Set(t.Coord, t)
	}
	Fill(store, world.TerrainEmpty)

	if err := store.Validate(); err != nil {
		return fmt.Errorf("mapdata: build %s: %w: %w", doc.Name, ErrInvalid, err)
	}
	return nil
}

func toEncounter(e *EncounterEntry) *world.Encounter {
	kind, _ := parseKind(e.Kind)
	enc := &world.Encounter{
		ID:         e.ID,
		Kind:       kind,
		Aggressive: e.Aggressive,
	}
	for _, en := range e.Enemies {
		enc.Enemies = append(enc.Enemies, world.Enemy{Name: en.Name, Tags: append([]string(nil), en.Tags...)})
	}
	if e.Text != "" {
		enc.Payload = e.Text
	}
	return enc
}

// AddBarriers pushes n light barriers onto every tile that already carries
// at least one, up to the stack cap. Returns how many were stored.
func AddBarriers(store *world.Store, n int) int {
	if n <= 0 {
		return 0
	}
	added := 0
	store.ForEachTile(func(t *world.Tile) {
		if t.Barriers.Empty() {
			return
		}
		for i := 0; i < n; i++ {
			if !t.Barriers.Push(world.BarrierLight) {
				break
			}
			added++
		}
	})
	return added
}
