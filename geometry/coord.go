// Package geometry provides integer 2-D vectors and 8-way compass
// directions for the toroidal-bounded grid world.
package geometry

import "math"

// Coord is a signed 2-D integer vector. Components are kept as int16 to
// match the wire-level coordinate precision assumed by the simulation's
// sensors and genome encoding.
type Coord struct {
	X, Y int16
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// AddDir returns the coordinate offset by a compass direction's unit vector.
func (c Coord) AddDir(d Dir) Coord {
	dx, dy := d.Vector()
	return Coord{c.X + dx, c.Y + dy}
}

// Scale multiplies both components by an integer factor.
func (c Coord) Scale(k int16) Coord {
	return Coord{c.X * k, c.Y * k}
}

// Length returns the Euclidean length of the vector.
func (c Coord) Length() float64 {
	return math.Sqrt(float64(c.X)*float64(c.X) + float64(c.Y)*float64(c.Y))
}

// IsZero reports whether both components are zero.
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// ToDir quantises the vector's angle into one of the 8 compass octants,
// returning Center iff both components are zero.
func (c Coord) ToDir() Dir {
	if c.IsZero() {
		return Center
	}
	angle := math.Atan2(float64(c.Y), float64(c.X))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	// 8 octants of 45 degrees each, centered on the compass rays.
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	return dirByOctant[octant]
}

// dirByOctant maps octant index (0 = East, increasing clockwise in a
// y-down grid where row index grows downward) to the corresponding
// compass direction.
var dirByOctant = [8]Dir{E, SE, S, SW, W, NW, N, NE}
