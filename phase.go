package gocube

import "github.com/SeamusWaldron/gocube_solver/internal/cube"

// Phase represents how far the cube is along the two-phase method.
// Phases progress from Scrambled (0) to Solved (2), allowing comparison
// with < and > operators.
type Phase = cube.Phase

const (
	// PhaseScrambled indicates twist, flip or the slice edges are unsolved.
	PhaseScrambled = cube.PhaseScrambled

	// PhaseSubgroup indicates the cube can be finished using only U, D and
	// half turns of the side faces.
	PhaseSubgroup = cube.PhaseSubgroup

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved = cube.PhaseSolved
)

// Progress holds the phase-1 coordinates: corner twist, edge flip and the
// position of the slice edges. All three are zero in PhaseSubgroup.
type Progress = cube.Progress
