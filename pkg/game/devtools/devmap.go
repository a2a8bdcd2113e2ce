package devtools

import (
	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/mapdata"
)

// DevMap returns a fully revealed developer testing map: one of every
// encounter kind placed in a row with a one-hex margin, barriers of each
// height, a wall and the exit
func DevMap() *mapdata.Document {
	doc := &mapdata.Document{
		Name:  "Dev Test Map",
		Cols:  11,
		Rows:  5,
		Start: hex.At(0, 2),
	}

	add := func(e mapdata.TileEntry) {
		e.Revealed = true
		doc.Tiles = append(doc.Tiles, e)
	}

	enc := func(id, kind string, aggressive bool, enemies ...mapdata.EnemyEntry) *mapdata.EncounterEntry {
		return &mapdata.EncounterEntry{ID: id, Kind: kind, Aggressive: aggressive, Enemies: enemies, Text: id}
	}

	add(mapdata.TileEntry{Col: 2, Row: 0, Encounter: enc("dev-simple", "simple", false)})
	add(mapdata.TileEntry{Col: 4, Row: 0, Encounter: enc("dev-choice", "choice", false)})
	add(mapdata.TileEntry{Col: 6, Row: 0, Encounter: enc("dev-combat", "combat", false, mapdata.EnemyEntry{Name: "Training Dummy"})})
	add(mapdata.TileEntry{Col: 8, Row: 0, Encounter: enc("dev-timid", "combat", false, mapdata.EnemyEntry{Name: "Hare", Tags: []string{world.TagTimid}})})
	add(mapdata.TileEntry{Col: 10, Row: 0, Encounter: enc("dev-empty-combat", "combat", false)})

	add(mapdata.TileEntry{Col: 2, Row: 4, Barriers: []int{world.BarrierLight}})
	add(mapdata.TileEntry{Col: 4, Row: 4, Barriers: []int{world.BarrierHeavy, world.BarrierLight}})
	add(mapdata.TileEntry{Col: 6, Row: 4, Barriers: []int{world.BarrierHeavy, world.BarrierHeavy, world.BarrierHeavy}})
	add(mapdata.TileEntry{Col: 5, Row: 2, Terrain: "blocked"})
	add(mapdata.TileEntry{Col: 10, Row: 2, Terrain: "exit"})

	// Hidden on purpose: walking next to it triggers the ambush
	doc.Tiles = append(doc.Tiles, mapdata.TileEntry{Col: 8, Row: 4,
		Encounter: enc("dev-ambush", "combat", true, mapdata.EnemyEntry{Name: "Ambusher"})})

	return doc
}
