package gameplay

import (
	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/logger"
)

// PopOneBarrierOnNeighbors removes the front barrier from every revealed
// neighbor of center. Hidden neighbors are left alone: a threat only recedes
// where it was already seen. Returns the coordinates whose stacks changed.
func (d *Dispatcher) PopOneBarrierOnNeighbors(center hex.Coord) []hex.Coord {
	var changed []hex.Coord
	for _, n := range d.game.Tiles.NeighborsOf(center) {
		if !n.Revealed {
			continue
		}
		if _, ok := n.Barriers.PopFront(); !ok {
			continue
		}
		changed = append(changed, n.Coord)
		d.present.OnBarrierChanged(n.Coord, n.Barriers.Clone())
	}
	if len(changed) > 0 {
		logger.Log.WithFields(coordFields(center)).WithField("tiles", len(changed)).Debug("barriers decayed")
	}
	return changed
}
