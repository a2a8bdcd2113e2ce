package world

// MaxBarriers is the most entries a barrier stack can hold
const MaxBarriers = 3

// Barrier values. Anything pushed is normalized to one of these.
const (
	BarrierLight = 1
	BarrierHeavy = 3
)

// BarrierStack is an ordered stack of decaying obstacles on a tile.
// The front element is the first one removed.
type BarrierStack []int

// NormalizeBarrier maps an arbitrary value onto BarrierLight or BarrierHeavy
func NormalizeBarrier(v int) int {
	if v >= BarrierHeavy {
		return BarrierHeavy
	}
	return BarrierLight
}

// Len returns the number of barriers on the stack
func (b BarrierStack) Len() int {
	return len(b)
}

// Empty returns true if there are no barriers left
func (b BarrierStack) Empty() bool {
	return len(b) == 0
}

// Push appends a normalized barrier. Returns false if the stack is full.
func (b *BarrierStack) Push(v int) bool {
	if len(*b) >= MaxBarriers {
		return false
	}
	*b = append(*b, NormalizeBarrier(v))
	return true
}

// PopFront removes the first barrier. Returns false if the stack was empty.
func (b *BarrierStack) PopFront() (int, bool) {
	if len(*b) == 0 {
		return 0, false
	}
	front := (*b)[0]
	*b = append(BarrierStack(nil), (*b)[1:]...)
	return front, true
}

// Clone returns an independent copy of the stack
func (b BarrierStack) Clone() BarrierStack {
	if b == nil {
		return nil
	}
	return append(BarrierStack(nil), b...)
}

// normalize caps the stack and maps every value onto {1,3}
func (b *BarrierStack) normalize() {
	if len(*b) > MaxBarriers {
		*b = (*b)[:MaxBarriers]
	}
	for i, v := range *b {
		(*b)[i] = NormalizeBarrier(v)
	}
}
