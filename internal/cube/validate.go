package cube

import "errors"

// Validation errors. A cube failing any of these cannot be reached by
// turning faces.
var (
	ErrMissingOrDuplicateCorner = errors.New("gocube: missing or duplicate corner")
	ErrMissingOrDuplicateEdge   = errors.New("gocube: missing or duplicate edge")
	ErrCornerTwist              = errors.New("gocube: corner twist error, one corner needs twisting")
	ErrEdgeFlip                 = errors.New("gocube: edge flip error, one edge needs flipping")
	ErrParityMismatch           = errors.New("gocube: parity error, two edges or two corners need swapping")
)

// Validate checks that the cube is reachable from the solved state:
// corners and edges are permutations, twist sums to 0 mod 3, flip sums to
// 0 mod 2 and corner and edge parity agree.
func (c *Cube) Validate() error {
	var cornerCount [NumCorners]int
	for _, p := range c.CP {
		if p < 0 || int(p) >= NumCorners {
			return ErrMissingOrDuplicateCorner
		}
		cornerCount[p]++
	}
	for _, n := range cornerCount {
		if n != 1 {
			return ErrMissingOrDuplicateCorner
		}
	}

	var edgeCount [NumEdges]int
	for _, p := range c.EP {
		if p < 0 || int(p) >= NumEdges {
			return ErrMissingOrDuplicateEdge
		}
		edgeCount[p]++
	}
	for _, n := range edgeCount {
		if n != 1 {
			return ErrMissingOrDuplicateEdge
		}
	}

	twist := 0
	for _, o := range c.CO {
		twist += int(o)
	}
	if twist%3 != 0 {
		return ErrCornerTwist
	}

	flip := 0
	for _, o := range c.EO {
		flip += int(o)
	}
	if flip%2 != 0 {
		return ErrEdgeFlip
	}

	if c.CornerParity() != c.EdgeParity() {
		return ErrParityMismatch
	}

	return nil
}
