// Package cube provides a 3x3 Rubik's cube model at the cubie level, its
// move algebra and the coordinates used by the two-phase solver.
package cube

import "fmt"

// Face numbers a center. The order U, R, F, D, L, B puts opposite faces
// three apart.
type Face int8

const (
	U Face = 0 // Up
	R Face = 1 // Right
	F Face = 2 // Front
	D Face = 3 // Down
	L Face = 4 // Left
	B Face = 5 // Back
)

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "?"
	}
	return faceNames[f : f+1]
}

const faceNames = "URFDLB"

// Corner slots and pieces.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slots and pieces.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

const (
	NumCenters = 6
	NumCorners = 8
	NumEdges   = 12
)

// Cube is a cube state, or equally a move: each array says which piece sits
// in a slot (CP, EP, Center) and how it is turned there (CO in 0..2, EO in
// 0..1). Decoded coordinates mark untracked slots with -1.
type Cube struct {
	Center [NumCenters]int8
	CP     [NumCorners]int8
	CO     [NumCorners]int8
	EP     [NumEdges]int8
	EO     [NumEdges]int8
}

// New creates a solved cube in standard orientation.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores the solved state.
func (c *Cube) Reset() {
	*c = identity
}

var identity = Cube{
	Center: [NumCenters]int8{0, 1, 2, 3, 4, 5},
	CP:     [NumCorners]int8{0, 1, 2, 3, 4, 5, 6, 7},
	EP:     [NumEdges]int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes are in the same state.
func (c *Cube) Equal(o *Cube) bool {
	return *c == *o
}

// IsIdentity reports whether the cube is solved without any whole-cube
// rotation applied.
func (c *Cube) IsIdentity() bool {
	return *c == identity
}

// IsSolved returns true if the cube is solved in any orientation.
func (c *Cube) IsSolved() bool {
	clone := c.Clone()
	clone.uprightInPlace()
	return clone.IsIdentity()
}

// CenterMultiply composes the centers of m onto c.
func (c *Cube) CenterMultiply(m *Cube) {
	var center [NumCenters]int8
	for to := range center {
		center[to] = c.Center[m.Center[to]]
	}
	c.Center = center
}

// CornerMultiply composes the corners of m onto c: the piece in slot t
// becomes the one that was in slot m.CP[t], turned by m.CO[t] more.
func (c *Cube) CornerMultiply(m *Cube) {
	var cp, co [NumCorners]int8
	for to := range cp {
		from := m.CP[to]
		cp[to] = c.CP[from]
		co[to] = (c.CO[from] + m.CO[to]) % 3
	}
	c.CP = cp
	c.CO = co
}

// EdgeMultiply composes the edges of m onto c.
func (c *Cube) EdgeMultiply(m *Cube) {
	var ep, eo [NumEdges]int8
	for to := range ep {
		from := m.EP[to]
		ep[to] = c.EP[from]
		eo[to] = (c.EO[from] + m.EO[to]) % 2
	}
	c.EP = ep
	c.EO = eo
}

// Multiply composes m onto c (c = c*m).
func (c *Cube) Multiply(m *Cube) {
	c.CenterMultiply(m)
	c.CornerMultiply(m)
	c.EdgeMultiply(m)
}

// String returns the facelet string of the cube.
func (c *Cube) String() string {
	return c.Facelets()
}

// Debug returns a dump of the raw arrays.
func (c *Cube) Debug() string {
	return fmt.Sprintf("center=%v cp=%v co=%v ep=%v eo=%v", c.Center, c.CP, c.CO, c.EP, c.EO)
}
