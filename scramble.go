package gocube

import (
	"lukechampine.com/frand"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// DefaultScrambleLength is the number of moves in a random-move scramble
// when no length is given.
const DefaultScrambleLength = 25

// Scramble returns a sequence that takes a solved cube to a uniformly
// random state: the inverse of a solution of a random cube.
func Scramble(opts ...Option) (string, error) {
	solution, err := Solve(RandomCube(), opts...)
	if err != nil {
		return "", err
	}
	return Inverse(solution)
}

// RandomMoveScramble returns n random face moves in which no two
// consecutive moves turn faces on the same axis. n <= 0 means
// DefaultScrambleLength.
func RandomMoveScramble(n int) []Move {
	if n <= 0 {
		n = DefaultScrambleLength
	}
	moves := make([]Move, n)
	lastAxis := -1
	for i := range moves {
		face := types.Faces[frand.Intn(len(types.Faces))]
		for face.Axis() == lastAxis {
			face = types.Faces[frand.Intn(len(types.Faces))]
		}
		lastAxis = face.Axis()
		moves[i] = types.MoveFromToken(uint8(face.Index()*3 + frand.Intn(3)))
	}
	return moves
}
