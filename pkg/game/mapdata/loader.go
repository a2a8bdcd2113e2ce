package mapdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid map")

// LoadEmbedded reads one of the bundled maps
func LoadEmbedded(name string) (*Document, error) {
	content, err := mapFS.ReadFile("maps/" + name)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read embedded %s: %w", name, err)
	}
	return Parse(content, name)
}

// LoadFile reads a map from disk
func LoadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read %s: %w", path, err)
	}
	return Parse(content, path)
}

// Load reads the map at path, or the bundled sample map if path is empty
func Load(path string) (*Document, error) {
	if path == "" {
		return LoadEmbedded(SampleMap)
	}
	return LoadFile(path)
}

// Parse decodes and validates a map document. source names it in errors.
func Parse(data []byte, source string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapdata: parse %s: %w", source, err)
	}
	if err := Validate(&doc); err != nil {
		return nil, fmt.Errorf("mapdata: parse %s: %w", source, err)
	}
	return &doc, nil
}

// Validate checks a document before any store is built from it
func Validate(doc *Document) error {
	if doc.Cols <= 0 || doc.Rows <= 0 {
		return fmt.Errorf("%w: extent %dx%d", ErrInvalid, doc.Cols, doc.Rows)
	}
	extent := doc.Extent()
	if !extent.Contains(doc.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrInvalid, doc.Start, doc.Cols, doc.Rows)
	}

	seen := mapset.New[hex.Coord]()
	for _, e := range doc.Tiles {
		c := e.Coord()
		if !extent.Contains(c) {
			return fmt.Errorf("%w: tile %v outside %dx%d", ErrInvalid, c, doc.Cols, doc.Rows)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: tile %v listed twice", ErrInvalid, c)
		}
		seen.Put(c)

		terrain, err := entryTerrain(e)
		if err != nil {
			return err
		}
		if e.Encounter != nil {
			if terrain != world.TerrainEncounter {
				return fmt.Errorf("%w: tile %v has an encounter on %s terrain", ErrInvalid, c, terrain)
			}
			if _, ok := parseKind(e.Encounter.Kind); !ok {
				return fmt.Errorf("%w: tile %v has unknown encounter kind %q", ErrInvalid, c, e.Encounter.Kind)
			}
		} else if terrain == world.TerrainEncounter {
			return fmt.Errorf("%w: tile %v is an encounter tile without an encounter", ErrInvalid, c)
		}
		if len(e.Barriers) > world.MaxBarriers {
			return fmt.Errorf("%w: tile %v has %d barriers, max %d", ErrInvalid, c, len(e.Barriers), world.MaxBarriers)
		}
		if c == doc.Start && (terrain == world.TerrainBlocked || terrain == world.TerrainEncounter) {
			return fmt.Errorf("%w: start %v is %s", ErrInvalid, c, terrain)
		}
	}
	return nil
}

// entryTerrain resolves an entry's terrain. An encounter implies encounter
// terrain; a missing terrain means empty.
func entryTerrain(e TileEntry) (world.Terrain, error) {
	if e.Terrain == "" {
		if e.Encounter != nil {
			return world.TerrainEncounter, nil
		}
		return world.TerrainEmpty, nil
	}
	t, ok := world.ParseTerrain(e.Terrain)
	if !ok {
		return world.TerrainEmpty, fmt.Errorf("%w: tile %v has unknown terrain %q", ErrInvalid, e.Coord(), e.Terrain)
	}
	return t, nil
}

func parseKind(s string) (world.EncounterKind, bool) {
	for _, k := range []world.EncounterKind{world.KindSimple, world.KindChoice, world.KindCombat} {
		if strings.EqualFold(k.String(), s) {
			return k, true
		}
	}
	return world.KindSimple, false
}
