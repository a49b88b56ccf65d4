package grid

// slabRows is the number of row buffers carved from one allocation.
const slabRows = 64

// arena hands out fixed-size rune buffers for rows.
// Buffers are carved from slabs of slabRows*width runes and recycled
// through a free list, so row storage never grows past the row width.
type arena struct {
	width int
	free  [][]rune
}

func newArena(width int) *arena {
	return &arena{width: width}
}

// alloc returns a buffer of exactly width runes.
// The contents of a recycled buffer are unspecified.
func (a *arena) alloc() []rune {
	if n := len(a.free); n > 0 {
		buf := a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
		return buf
	}

	slab := make([]rune, slabRows*a.width)
	for i := 1; i < slabRows; i++ {
		a.free = append(a.free, slab[i*a.width:(i+1)*a.width:(i+1)*a.width])
	}
	return slab[:a.width:a.width]
}

// release returns a buffer to the free list.
func (a *arena) release(buf []rune) {
	if cap(buf) != a.width {
		return
	}
	a.free = append(a.free, buf[:a.width])
}
