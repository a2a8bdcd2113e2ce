// Package mapdata loads hex maps from JSON documents and builds tile stores
// from them. Map authoring itself happens elsewhere; this is the thin loader.
package mapdata

import "hexcrawl/pkg/engine/hex"

// Document is a map as stored on disk
type Document struct {
	Name  string      `json:"name"`
	Cols  int         `json:"cols"`
	Rows  int         `json:"rows"`
	Start hex.Coord   `json:"start"`
	Tiles []TileEntry `json:"tiles"`
}

// Extent returns the document's grid bounds
func (d *Document) Extent() hex.Extent {
	return hex.Extent{Cols: d.Cols, Rows: d.Rows}
}

// TileEntry overrides one tile. Tiles not listed are empty, passable and hidden.
type TileEntry struct {
	Col       int             `json:"col"`
	Row       int             `json:"row"`
	Terrain   string          `json:"terrain,omitempty"`
	Passable  *bool           `json:"passable,omitempty"`
	Revealed  bool            `json:"revealed,omitempty"`
	Barriers  []int           `json:"barriers,omitempty"`
	Encounter *EncounterEntry `json:"encounter,omitempty"`
}

// Coord returns the entry's coordinate
func (e TileEntry) Coord() hex.Coord {
	return hex.At(e.Col, e.Row)
}

// EncounterEntry describes an encounter placed on a tile
type EncounterEntry struct {
	ID         string       `json:"id"`
	Kind       string       `json:"kind"`
	Aggressive bool         `json:"aggressive,omitempty"`
	Enemies    []EnemyEntry `json:"enemies,omitempty"`
	Text       string       `json:"text,omitempty"`
}

// EnemyEntry is one combat participant
type EnemyEntry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}
