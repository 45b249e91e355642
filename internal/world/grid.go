package world

import "fmt"

// Grid is a fixed-size 3D container stored in one contiguous slice.
// Cells are laid out x-major: index = x*h*d + y*d + z.
type Grid[T any] struct {
	w, h, d int
	cells   []T
}

// NewGrid allocates a w*h*d grid. It panics if any dimension is not positive.
func NewGrid[T any](w, h, d int) *Grid[T] {
	if w <= 0 || h <= 0 || d <= 0 {
		panic(fmt.Sprintf("world: invalid grid dimensions %dx%dx%d", w, h, d))
	}
	return &Grid[T]{
		w:     w,
		h:     h,
		d:     d,
		cells: make([]T, w*h*d),
	}
}

// Dims returns the grid dimensions.
func (g *Grid[T]) Dims() (w, h, d int) {
	return g.w, g.h, g.d
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x, y, z) addresses a cell.
func (g *Grid[T]) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && z >= 0 && z < g.d
}

// Index converts cell coordinates to a flat index. Callers check InBounds first.
func (g *Grid[T]) Index(x, y, z int) int {
	return x*g.h*g.d + y*g.d + z
}

// At returns the cell value, or the zero value when out of range.
func (g *Grid[T]) At(x, y, z int) T {
	if !g.InBounds(x, y, z) {
		var zero T
		return zero
	}
	return g.cells[g.Index(x, y, z)]
}

// Set stores v and reports whether the coordinates were in range.
func (g *Grid[T]) Set(x, y, z int, v T) bool {
	if !g.InBounds(x, y, z) {
		return false
	}
	g.cells[g.Index(x, y, z)] = v
	return true
}

// Each visits every cell in index order.
func (g *Grid[T]) Each(fn func(x, y, z int, v T)) {
	i := 0
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			for z := 0; z < g.d; z++ {
				fn(x, y, z, g.cells[i])
				i++
			}
		}
	}
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.cells)
}
