// Package hex provides coordinate math for a flat-top, column-offset hex grid.
// Everything here is pure: no state, safe for concurrent use.
package hex

import "fmt"

// Coord is an offset (column, row) address of a hex cell.
// Comparable, so it can be used directly as a map key.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// At is shorthand for Coord{Col: col, Row: row}
func At(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns "(col,row)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns the coordinate one hex away in the given direction
func (c Coord) Step(d Direction) Coord {
	dc, dr := d.Delta(c.Col)
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Neighbors returns the six adjacent coordinates in Direction order.
// No bounds checking is done; callers filter by grid extent.
func Neighbors(c Coord) [6]Coord {
	var result [6]Coord
	for i, dir := range AllDirections() {
		result[i] = c.Step(dir)
	}
	return result
}

// IsAdjacent returns true if b is one of a's six neighbors
func IsAdjacent(a, b Coord) bool {
	for _, n := range Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// DirectionTo returns the direction from a to an adjacent b.
// The second result is false when b is not adjacent to a.
func DirectionTo(a, b Coord) (Direction, bool) {
	for _, dir := range AllDirections() {
		if a.Step(dir) == b {
			return dir, true
		}
	}
	return North, false
}

// Distance returns the hex distance (minimum number of steps) between a and b
func Distance(a, b Coord) int {
	ax, ay, az := toCube(a)
	bx, by, bz := toCube(b)
	return max(abs(ax-bx), abs(ay-by), abs(az-bz))
}

// toCube converts odd-q offset coordinates to cube coordinates
func toCube(c Coord) (x, y, z int) {
	x = c.Col
	z = c.Row - (c.Col-(c.Col&1))/2
	y = -x - z
	return x, y, z
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Extent is the rectangular bounds of a grid: columns [0, Cols) and rows [0, Rows)
type Extent struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Contains checks if a coordinate is within the extent
func (e Extent) Contains(c Coord) bool {
	return c.Col >= 0 && c.Col < e.Cols && c.Row >= 0 && c.Row < e.Rows
}

// Area returns the number of cells covered by the extent
func (e Extent) Area() int {
	if e.Cols <= 0 || e.Rows <= 0 {
		return 0
	}
	return e.Cols * e.Rows
}

// ForEach calls fn for every coordinate in the extent, column by column
func (e Extent) ForEach(fn func(c Coord)) {
	for col := 0; col < e.Cols; col++ {
		for row := 0; row < e.Rows; row++ {
			fn(Coord{Col: col, Row: row})
		}
	}
}
