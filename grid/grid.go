// Package grid implements the dense 2-D occupancy grid that backs the
// toroidal-bounded world: each cell holds either EMPTY, BARRIER, or a
// 1-based occupant index into the population.
package grid

import "github.com/pelagic-labs/biotope/geometry"

// Tag is the 16-bit cell value. Reserved values are EMPTY and BARRIER;
// any other value is a 1-based occupant index into the population.
type Tag uint16

const (
	// EMPTY marks a cell with no occupant and no barrier.
	EMPTY Tag = 0
	// BARRIER marks an impassable cell.
	BARRIER Tag = 0xFFFF
)

// Grid is a dense width x height array of cell tags.
type Grid struct {
	Width, Height int
	cells         []Tag
}

// New creates a grid of the given dimensions, all cells EMPTY.
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Tag, width*height),
	}
}

func (g *Grid) index(c geometry.Coord) int {
	return int(c.Y)*g.Width + int(c.X)
}

// InBounds reports whether a coordinate lies within the grid, checking
// both lower and upper bounds (the source only checked upper bounds;
// this is the corrected behaviour per spec.md's explicit note).
func (g *Grid) InBounds(c geometry.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && int(c.X) < g.Width && int(c.Y) < g.Height
}

// At returns the tag at a coordinate. Panics if out of bounds: callers
// (sensors, actions) must check InBounds first, per spec.md's
// out-of-bounds-is-a-programmer-error policy.
func (g *Grid) At(c geometry.Coord) Tag {
	if !g.InBounds(c) {
		panic("grid: At called with out-of-bounds coordinate")
	}
	return g.cells[g.index(c)]
}

// Set writes a tag at a coordinate. Panics if out of bounds.
func (g *Grid) Set(c geometry.Coord, t Tag) {
	if !g.InBounds(c) {
		panic("grid: Set called with out-of-bounds coordinate")
	}
	g.cells[g.index(c)] = t
}

// IsEmpty reports whether a (necessarily in-bounds) cell is EMPTY.
func (g *Grid) IsEmpty(c geometry.Coord) bool {
	return g.At(c) == EMPTY
}

// IsBarrier reports whether a (necessarily in-bounds) cell is BARRIER.
func (g *Grid) IsBarrier(c geometry.Coord) bool {
	return g.At(c) == BARRIER
}

// IsOccupied reports whether a cell holds a live occupant index.
func (g *Grid) IsOccupied(c geometry.Coord) bool {
	t := g.At(c)
	return t != EMPTY && t != BARRIER
}

// ZeroFill resets every cell to EMPTY, used at generation boundaries.
func (g *Grid) ZeroFill() {
	for i := range g.cells {
		g.cells[i] = EMPTY
	}
}

// SetBarrier marks a cell as BARRIER.
func (g *Grid) SetBarrier(c geometry.Coord) {
	g.Set(c, BARRIER)
}
