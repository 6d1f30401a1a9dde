package cube

import (
	"errors"
	"fmt"
)

// ErrInvalidFacelets is returned for facelet strings of the wrong length or
// with symbols other than U, R, F, D, L, B.
var ErrInvalidFacelets = errors.New("gocube: invalid facelet string")

// NumFacelets is the length of a facelet string: 9 per face, faces in
// U, R, F, D, L, B order.
const NumFacelets = 54

// Facelet positions. Each face is numbered
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// and face f occupies [9f, 9f+9).
func fU(x int) int { return x - 1 }
func fR(x int) int { return 9 + x - 1 }
func fF(x int) int { return 18 + x - 1 }
func fD(x int) int { return 27 + x - 1 }
func fL(x int) int { return 36 + x - 1 }
func fB(x int) int { return 45 + x - 1 }

// cornerFacelet lists the facelets of each corner slot, starting with the
// U or D sticker and going clockwise.
var cornerFacelet = [NumCorners][3]int{
	{fU(9), fR(1), fF(3)}, {fU(7), fF(1), fL(3)}, {fU(1), fL(1), fB(3)}, {fU(3), fB(1), fR(3)},
	{fD(3), fF(9), fR(7)}, {fD(1), fL(9), fF(7)}, {fD(7), fB(9), fL(7)}, {fD(9), fR(9), fB(7)},
}

// edgeFacelet lists the facelets of each edge slot.
var edgeFacelet = [NumEdges][2]int{
	{fU(6), fR(2)}, {fU(8), fF(2)}, {fU(4), fL(2)}, {fU(2), fB(2)},
	{fD(6), fR(8)}, {fD(2), fF(8)}, {fD(4), fL(8)}, {fD(8), fB(8)},
	{fF(6), fR(4)}, {fF(4), fL(6)}, {fB(6), fL(4)}, {fB(4), fR(6)},
}

var cornerColor = [NumCorners][3]byte{
	{'U', 'R', 'F'}, {'U', 'F', 'L'}, {'U', 'L', 'B'}, {'U', 'B', 'R'},
	{'D', 'F', 'R'}, {'D', 'L', 'F'}, {'D', 'B', 'L'}, {'D', 'R', 'B'},
}

var edgeColor = [NumEdges][2]byte{
	{'U', 'R'}, {'U', 'F'}, {'U', 'L'}, {'U', 'B'},
	{'D', 'R'}, {'D', 'F'}, {'D', 'L'}, {'D', 'B'},
	{'F', 'R'}, {'F', 'L'}, {'B', 'L'}, {'B', 'R'},
}

// Facelets returns the 54-symbol facelet string of the cube. Each symbol
// names the face whose center the sticker matches when solved.
func (c *Cube) Facelets() string {
	var out [NumFacelets]byte
	for i := range out {
		out[i] = '?'
	}
	for i := 0; i < NumCenters; i++ {
		if f := Face(c.Center[i]); f >= 0 && int(f) < NumCenters {
			out[9*i+4] = faceNames[f]
		}
	}
	for i := 0; i < NumCorners; i++ {
		corner, ori := int(c.CP[i]), int(c.CO[i])
		if corner < 0 || corner >= NumCorners {
			continue
		}
		for n := 0; n < 3; n++ {
			out[cornerFacelet[i][(n+ori)%3]] = cornerColor[corner][n]
		}
	}
	for i := 0; i < NumEdges; i++ {
		edge, ori := int(c.EP[i]), int(c.EO[i])
		if edge < 0 || edge >= NumEdges {
			continue
		}
		for n := 0; n < 2; n++ {
			out[edgeFacelet[i][(n+ori)%2]] = edgeColor[edge][n]
		}
	}
	return string(out[:])
}

// FromFacelets decodes a facelet string. Pieces whose stickers match no
// real piece are stored as -1, so Validate reports them.
func FromFacelets(s string) (*Cube, error) {
	if len(s) != NumFacelets {
		return nil, fmt.Errorf("%w: expected %d facelets, got %d", ErrInvalidFacelets, NumFacelets, len(s))
	}
	for i := 0; i < len(s); i++ {
		if faceIndex(s[i]) < 0 {
			return nil, fmt.Errorf("%w: unknown symbol %q at %d", ErrInvalidFacelets, s[i], i)
		}
	}

	c := &Cube{}
	for i := 0; i < NumCenters; i++ {
		c.Center[i] = int8(faceIndex(s[9*i+4]))
	}
	if !centersAreRotation(c.Center) {
		return nil, fmt.Errorf("%w: centers %s are not a whole-cube rotation", ErrInvalidFacelets, centerString(s))
	}

	for i := 0; i < NumCorners; i++ {
		c.CP[i] = -1
		ori := 0
		for ; ori < 3; ori++ {
			if col := s[cornerFacelet[i][ori]]; col == 'U' || col == 'D' {
				break
			}
		}
		col1 := s[cornerFacelet[i][(ori+1)%3]]
		col2 := s[cornerFacelet[i][(ori+2)%3]]
		for j := 0; j < NumCorners; j++ {
			if col1 == cornerColor[j][1] && col2 == cornerColor[j][2] {
				c.CP[i] = int8(j)
				c.CO[i] = int8(ori % 3)
				break
			}
		}
	}

	for i := 0; i < NumEdges; i++ {
		c.EP[i] = -1
		a, b := s[edgeFacelet[i][0]], s[edgeFacelet[i][1]]
		for j := 0; j < NumEdges; j++ {
			if a == edgeColor[j][0] && b == edgeColor[j][1] {
				c.EP[i], c.EO[i] = int8(j), 0
				break
			}
			if a == edgeColor[j][1] && b == edgeColor[j][0] {
				c.EP[i], c.EO[i] = int8(j), 1
				break
			}
		}
	}

	return c, nil
}

// centersAreRotation reports whether some whole-cube rotation carries the
// solved centers onto centers.
func centersAreRotation(centers [NumCenters]int8) bool {
	c := New()
	c.Center = centers
	c.uprightInPlace()
	return c.Center == New().Center
}

func centerString(s string) string {
	var b [NumCenters]byte
	for i := range b {
		b[i] = s[9*i+4]
	}
	return string(b[:])
}

func faceIndex(b byte) int {
	for i := 0; i < len(faceNames); i++ {
		if faceNames[i] == b {
			return i
		}
	}
	return -1
}
