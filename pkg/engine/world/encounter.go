package world

import "slices"

// TagTimid marks an enemy that flees when the player walks away from it
const TagTimid = "Timid"

// EncounterKind is the broad type of an encounter
type EncounterKind int

// Encounter kinds
const (
	KindSimple EncounterKind = iota
	KindChoice
	KindCombat
)

// String returns the string representation of an encounter kind
func (k EncounterKind) String() string {
	switch k {
	case KindSimple:
		return "Simple"
	case KindChoice:
		return "Choice"
	case KindCombat:
		return "Combat"
	default:
		return "Unknown"
	}
}

// Enemy is the part of a combat participant the engine inspects
type Enemy struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// HasTag returns true if the enemy carries the given tag
func (e Enemy) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// Encounter describes what happens on an encounter tile. The engine only reads
// the kind, the aggressive flag and the enemy list; Payload is carried through
// untouched for the presentation layer.
type Encounter struct {
	ID         string        `json:"id"`
	Kind       EncounterKind `json:"kind"`
	Aggressive bool          `json:"aggressive,omitempty"`
	Enemies    []Enemy       `json:"enemies,omitempty"`
	Payload    any           `json:"payload,omitempty"`
}

// IsCombat returns true for a combat encounter with at least one enemy.
// A combat encounter without enemies is malformed and handled as simple.
func (e *Encounter) IsCombat() bool {
	return e != nil && e.Kind == KindCombat && len(e.Enemies) > 0
}

// IsAggressiveCombat returns true for combat that ambushes on reveal
func (e *Encounter) IsAggressiveCombat() bool {
	return e.IsCombat() && e.Aggressive
}

// IsChoice returns true for a choice encounter
func (e *Encounter) IsChoice() bool {
	return e != nil && e.Kind == KindChoice
}

// HasTimidTag returns true for combat where every enemy is timid
func (e *Encounter) HasTimidTag() bool {
	if !e.IsCombat() {
		return false
	}
	for _, enemy := range e.Enemies {
		if !enemy.HasTag(TagTimid) {
			return false
		}
	}
	return true
}

// EffectiveKind is the kind the dispatcher acts on, after malformed data is
// downgraded (combat with no enemies is simple)
func (e *Encounter) EffectiveKind() EncounterKind {
	switch {
	case e.IsCombat():
		return KindCombat
	case e.IsChoice():
		return KindChoice
	default:
		return KindSimple
	}
}

// FirstEnemyName returns the name of the first enemy, or "" if there are none
func (e *Encounter) FirstEnemyName() string {
	if e == nil || len(e.Enemies) == 0 {
		return ""
	}
	return e.Enemies[0].Name
}
