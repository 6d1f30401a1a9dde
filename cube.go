package gocube

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cube"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
	"github.com/SeamusWaldron/gocube_solver/internal/tables"
)

// Cube represents a 3x3 Rubik's cube.
type Cube struct {
	c *cube.Cube
}

// NewCube creates a solved cube in standard orientation:
// U on top, F in front.
func NewCube() *Cube {
	return &Cube{c: cube.New()}
}

// FromFacelets creates a cube from a 54-symbol facelet string listing the
// U, R, F, D, L and B faces in that order, each row by row. The cube is
// not validated; call Validate.
func FromFacelets(s string) (*Cube, error) {
	c, err := cube.FromFacelets(s)
	if err != nil {
		return nil, err
	}
	return &Cube{c: c}, nil
}

// RandomCube returns a uniformly random solvable cube.
func RandomCube() *Cube {
	return &Cube{c: cube.Random()}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	return &Cube{c: c.c.Clone()}
}

// Apply applies face moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.c.ApplyMove(int(m.Token()))
	}
}

// ApplyNotation applies an algorithm such as "R U R' U'". Slice moves
// (E M S), wide moves (u r f d l b) and rotations (x y z) are accepted.
// Moves before an invalid token stay applied.
func (c *Cube) ApplyNotation(alg string) error {
	return c.c.Move(alg)
}

// IsSolved returns true if every face shows one color, in any orientation.
func (c *Cube) IsSolved() bool {
	return c.c.IsSolved()
}

// Validate reports whether the cube can be solved by turning faces.
func (c *Cube) Validate() error {
	return c.c.Validate()
}

// Phase returns the current two-phase stage of the cube.
func (c *Cube) Phase() Phase {
	return c.c.DetectPhase()
}

// Progress returns the phase-1 coordinates of the cube.
func (c *Cube) Progress() Progress {
	return c.c.GetProgress()
}

// Facelets returns the 54-symbol facelet string of the cube.
func (c *Cube) Facelets() string {
	return c.c.Facelets()
}

// String returns the facelet string of the cube.
func (c *Cube) String() string {
	return c.c.String()
}

// Equal reports whether two cubes are in the same state.
func (c *Cube) Equal(o *Cube) bool {
	return c.c.Equal(o.c)
}

// InitTables builds the solver tables if they have not been built yet.
// Calling it again is a no-op. Solve calls it on first use.
func InitTables() {
	tables.Default()
}

// Solve returns a move sequence that solves c, of at most 22 moves unless
// WithMaxDepth says otherwise. The cube is validated first. The moves are
// named for the orientation c is in, so applying them to c leaves it solved.
func Solve(c *Cube, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := c.Validate(); err != nil {
		return "", err
	}
	t := cfg.tables
	if t == nil {
		t = tables.Default()
	}
	return solver.New(t).Solve(cfg.ctx, c.c, cfg.maxDepth)
}

// Solve returns a solution for the cube. See the package-level Solve.
func (c *Cube) Solve(opts ...Option) (string, error) {
	return Solve(c, opts...)
}

// Inverse returns the algorithm that undoes alg: "R U R' U'" becomes
// "U R U' R'".
func Inverse(alg string) (string, error) {
	return cube.Inverse(alg)
}
