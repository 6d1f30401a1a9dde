package cube

import (
	"strings"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
)

// Upright returns the whole-cube rotation (at most two tokens) that brings
// the F center to the front and the U center to the top. The cube itself
// is not changed.
func (c *Cube) Upright() string {
	clone := c.Clone()
	var rots []string

	rot1 := ""
	switch slotOf(clone, F) {
	case D:
		rot1 = "x"
	case U:
		rot1 = "x'"
	case B:
		rot1 = "x2"
	case R:
		rot1 = "y"
	case L:
		rot1 = "y'"
	}
	if rot1 != "" {
		rots = append(rots, rot1)
		clone.MustMove(rot1)
	}

	switch slotOf(clone, U) {
	case L:
		rots = append(rots, "z")
	case R:
		rots = append(rots, "z'")
	case D:
		rots = append(rots, "z2")
	}

	return strings.Join(rots, " ")
}

func (c *Cube) uprightInPlace() {
	c.MustMove(c.Upright())
}

// slotOf returns the slot currently holding center f.
func slotOf(c *Cube, f Face) Face {
	for i, center := range c.Center {
		if Face(center) == f {
			return Face(i)
		}
	}
	return -1
}

// Orientation records the whole-cube rotation removed by Canonicalize so
// moves found for the canonical cube can be named for the original one.
type Orientation struct {
	Rotation string
	centers  [NumCenters]int8
}

// Canonicalize returns the rotation that uprights c and the uprighted copy.
func Canonicalize(c *Cube) (Orientation, *Cube) {
	rot := c.Upright()
	clone := c.Clone()
	clone.MustMove(rot)
	return Orientation{Rotation: rot, centers: New().MustMove(rot).Center}, clone
}

// Translate renames the faces of a face-move sequence found for the
// canonical cube so it applies to the original cube. Turning face X after
// the rotation is the same as turning, before it, the face the rotation
// carries onto X.
func (o Orientation) Translate(seq string) (string, error) {
	tokens, err := notation.ParseAlgorithm(seq)
	if err != nil {
		return "", err
	}
	for i, tok := range tokens {
		if !tok.IsFaceMove() {
			return "", &notation.MoveError{Token: tok.String()}
		}
		tokens[i].Base = int(o.centers[tok.Base])
	}
	return notation.FormatTokens(tokens), nil
}
