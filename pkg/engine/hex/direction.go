package hex

// Direction represents one of the six edges of a flat-top hex
type Direction int

// Direction constants, clockwise from the top edge
const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// directionCount is the number of hex edges
const directionCount = 6

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, SouthEast, South, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the six hex edges
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Offset tables for the "odd-q" layout: odd columns sit half a hex lower than
// even columns. Indexed by Direction.
var (
	evenColumnOffsets = [directionCount]Coord{
		North:     {Col: 0, Row: -1},
		NorthEast: {Col: 1, Row: -1},
		SouthEast: {Col: 1, Row: 0},
		South:     {Col: 0, Row: 1},
		SouthWest: {Col: -1, Row: 0},
		NorthWest: {Col: -1, Row: -1},
	}
	oddColumnOffsets = [directionCount]Coord{
		North:     {Col: 0, Row: -1},
		NorthEast: {Col: 1, Row: 0},
		SouthEast: {Col: 1, Row: 1},
		South:     {Col: 0, Row: 1},
		SouthWest: {Col: -1, Row: 1},
		NorthWest: {Col: -1, Row: 0},
	}
)

// Delta returns the column and row offsets for this direction when stepping
// out of a hex in the given column. The answer depends on column parity.
func (d Direction) Delta(col int) (colDelta, rowDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	off := evenColumnOffsets[d]
	if isOdd(col) {
		off = oddColumnOffsets[d]
	}
	return off.Col, off.Row
}

// isOdd reports column parity; works for negative columns too
func isOdd(col int) bool {
	return col&1 == 1
}
