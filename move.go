package gocube

import (
	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// Face represents a cube face in standard notation.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// Move represents a single face move.
type Move = types.Move

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns a *MoveError if the notation is not a face move.
func ParseMove(s string) (Move, error) {
	m, ok := notation.ParseNotation(s)
	if !ok {
		return Move{}, &MoveError{Token: s}
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of face moves.
// Example: "R U R' U'"
// It fails on the first invalid move.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}
