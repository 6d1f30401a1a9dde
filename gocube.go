// Package gocube solves 3x3 Rubik's cubes with Kociemba's two-phase
// algorithm.
//
// # Features
//
//   - Cubie-level cube model with face, slice, wide and rotation moves
//   - Facelet string import and export
//   - Validity checks (missing pieces, twist, flip, parity)
//   - Two-phase solver with a configurable move budget
//   - Random-state and random-move scrambles
//
// # Quick Start
//
//	cube := gocube.NewCube()
//	if err := cube.ApplyNotation("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	solution, err := gocube.Solve(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", solution)
//
// # Tables
//
// The solver needs move and pruning tables that take a few seconds to
// build. They are built once per process, on the first Solve or on an
// explicit InitTables call, and shared by every later call:
//
//	gocube.InitTables()
//
// # Options
//
// Solve accepts options:
//
//	gocube.Solve(cube, gocube.WithMaxDepth(24), gocube.WithContext(ctx))
//
// # Phases
//
// A cube is in one of three phases:
//
//   - PhaseScrambled: twist, flip or slice edges still wrong
//   - PhaseSubgroup: solvable with U, D and half turns of the sides
//   - PhaseSolved: solved in some orientation
package gocube
