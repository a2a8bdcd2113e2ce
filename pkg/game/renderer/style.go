// Package renderer defines the collaborators the gameplay core drives:
// presentation (Presenter) and the movement economy (Spender).
package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHidden
	StyleEmpty
	StyleBlocked
	StyleExit
	StyleEncounter
	StyleCombat
	StyleAggressive
	StyleBarrier
	StylePawn
	StylePath
	StyleWarning
	StyleSubtle
)

// Glyphs used by text presenters
const (
	GlyphHidden     = "·"
	GlyphEmpty      = "○"
	GlyphBlocked    = "▒"
	GlyphExit       = "△"
	GlyphSimple     = "?"
	GlyphChoice     = "◇"
	GlyphCombat     = "⚔"
	GlyphAggressive = "!"
	GlyphPawn       = "@"
	GlyphPath       = "•"
)
