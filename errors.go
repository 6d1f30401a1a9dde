package gocube

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cube"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidMove     = cube.ErrInvalidMove
	ErrInvalidFacelets = cube.ErrInvalidFacelets

	// Validation errors
	ErrMissingOrDuplicateCorner = cube.ErrMissingOrDuplicateCorner
	ErrMissingOrDuplicateEdge   = cube.ErrMissingOrDuplicateEdge
	ErrCornerTwist              = cube.ErrCornerTwist
	ErrEdgeFlip                 = cube.ErrEdgeFlip
	ErrParityMismatch           = cube.ErrParityMismatch

	// Search errors
	ErrNoSolution = solver.ErrNoSolution
)

// MoveError names the move token that could not be parsed. It unwraps to
// ErrInvalidMove.
type MoveError = cube.MoveError
