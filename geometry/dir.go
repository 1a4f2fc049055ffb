package geometry

// Dir is one of the 9 compass directions (8 headings plus Center).
// Values are laid out in clockwise order starting at North so that
// rotation is simple modular arithmetic.
type Dir uint8

const (
	Center Dir = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

// dirVectors maps each heading to its unit vector in a y-down grid
// (row index grows downward, so North decreases Y).
var dirVectors = [9]Coord{
	Center: {0, 0},
	N:      {0, -1},
	NE:     {1, -1},
	E:      {1, 0},
	SE:     {1, 1},
	S:      {0, 1},
	SW:     {-1, 1},
	W:      {-1, 0},
	NW:     {-1, -1},
}

// Vector returns the unit (or zero) displacement for a direction.
func (d Dir) Vector() (dx, dy int16) {
	v := dirVectors[d]
	return v.X, v.Y
}

// Coord returns the direction's unit vector as a Coord.
func (d Dir) Coord() Coord {
	return dirVectors[d]
}

// octantOrder lists the 8 non-Center headings in clockwise order,
// matching geometry.Coord.ToDir's octant table.
var octantOrder = [8]Dir{E, SE, S, SW, W, NW, N, NE}

var octantIndex = map[Dir]int{
	E: 0, SE: 1, S: 2, SW: 3, W: 4, NW: 5, N: 6, NE: 7,
}

// Rotate rotates the direction by k steps of 45 degrees, clockwise for
// positive k. Center rotates to itself.
func (d Dir) Rotate(k int) Dir {
	if d == Center {
		return Center
	}
	idx, ok := octantIndex[d]
	if !ok {
		return d
	}
	n := ((idx+k)%8 + 8) % 8
	return octantOrder[n]
}

// String renders a human-readable direction name.
func (d Dir) String() string {
	switch d {
	case Center:
		return "Center"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "?"
	}
}
