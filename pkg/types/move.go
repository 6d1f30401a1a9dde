// Package types contains shared type definitions for the gocube solver.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Faces lists the faces in search order. A face's position in this list is
// its face index; the opposite face sits three places further on.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Index returns the face index (U=0, R=1, F=2, D=3, L=4, B=5), or -1.
func (f Face) Index() int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}

// Axis returns 0 for U/D, 1 for R/L and 2 for F/B, or -1.
func (f Face) Axis() int {
	i := f.Index()
	if i < 0 {
		return -1
	}
	return i % 3
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// NumMoves is the number of face moves: six faces, three turns each.
const NumMoves = 18

// Move represents a single face move.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// Token encodes the move as its search move index.
// Encoding: face*3 + turn_code where:
//   - face: U=0, R=1, F=2, D=3, L=4, B=5
//   - turn_code: CW=0, 180=1, CCW=2
func (m Move) Token() uint8 {
	faceCode := uint8(m.Face.Index())

	var turnCode uint8
	switch m.Turn {
	case TurnCW:
		turnCode = 0
	case Turn180:
		turnCode = 1
	case TurnCCW:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	faceCode := token / 3
	turnCode := token % 3
	if int(faceCode) >= len(Faces) {
		faceCode = 0
	}

	var turn Turn
	switch turnCode {
	case 0:
		turn = TurnCW
	case 1:
		turn = Turn180
	case 2:
		turn = TurnCCW
	}

	return Move{Face: Faces[faceCode], Turn: turn}
}
