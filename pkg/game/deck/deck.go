// Package deck defines the fixed stage count, the final stage, and the region
// each stage of the crawl takes place in. The player never sees the total; they
// discover the end by reaching the exit of the final stage.
package deck

import (
	"github.com/leonelquinteros/gotext"
)

// Region is the landscape a stage is set in
type Region int

const (
	Meadow Region = iota // Open ground, few barriers
	Forest               // Thickets and fallen trees
	Marsh                // Sinking ground, slow going
	Hills                // Rockfalls and narrow passes
	Ruins                // Collapsed walls, old wards
	Depths               // The last descent
)

// regionCount is the number of regions (for cycling)
const regionCount = 6

// RegionFor returns the region for the given stage (1-based).
// Regions cycle so each stage has an identity.
func RegionFor(stage int) Region {
	if stage <= 0 {
		return Meadow
	}
	return Region((stage - 1) % regionCount)
}

// TotalStages is the fixed number of stages in a run (never shown to player)
const TotalStages = 6

// IsFinalStage returns true if the given stage (1-based) is the final one
func IsFinalStage(stage int) bool {
	return stage >= TotalStages
}

// NextStage returns the stage after current, or 0 if current is final
func NextStage(current int) int {
	if current <= 0 || current >= TotalStages {
		return 0
	}
	return current + 1
}

// Progress tracks the current stage of a run
type Progress struct {
	Stage int
}

// NewProgress starts a run at the given stage, clamped into range
func NewProgress(stage int) *Progress {
	if stage < 1 {
		stage = 1
	}
	if stage > TotalStages {
		stage = TotalStages
	}
	return &Progress{Stage: stage}
}

// Advance moves to the next stage. Returns false, leaving the stage as it
// is, when the current stage is final.
func (p *Progress) Advance() bool {
	next := NextStage(p.Stage)
	if next == 0 {
		return false
	}
	p.Stage = next
	return true
}

// IsFinal returns true on the last stage
func (p *Progress) IsFinal() bool {
	return IsFinalStage(p.Stage)
}

// Region returns the current stage's region
func (p *Progress) Region() Region {
	return RegionFor(p.Stage)
}

// Params holds per-stage tuning. Later stages refill fewer move tokens and
// pile more barriers onto tiles that already carry some.
type Params struct {
	TokenRefill  int
	BarrierBonus int
}

// ParamsFor returns tuning for the given stage (1-based)
func ParamsFor(stage int) Params {
	if stage <= 1 {
		return Params{TokenRefill: 0, BarrierBonus: 0}
	}
	refill := 10 - stage
	if refill < 4 {
		refill = 4
	}
	return Params{TokenRefill: refill, BarrierBonus: (stage - 1) / 2}
}

// RegionKey returns the gettext message key for a region's name
func RegionKey(r Region) string {
	switch r {
	case Forest:
		return "REGION_FOREST"
	case Marsh:
		return "REGION_MARSH"
	case Hills:
		return "REGION_HILLS"
	case Ruins:
		return "REGION_RUINS"
	case Depths:
		return "REGION_DEPTHS"
	default:
		return "REGION_MEADOW"
	}
}

// RegionName returns the translated name of a region. Uses gotext.Get with
// constant keys to satisfy vet.
func RegionName(r Region) string {
	switch r {
	case Forest:
		return gotext.Get("REGION_FOREST")
	case Marsh:
		return gotext.Get("REGION_MARSH")
	case Hills:
		return gotext.Get("REGION_HILLS")
	case Ruins:
		return gotext.Get("REGION_RUINS")
	case Depths:
		return gotext.Get("REGION_DEPTHS")
	default:
		return gotext.Get("REGION_MEADOW")
	}
}
