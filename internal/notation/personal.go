package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

var faceNames = map[types.Face]string{
	types.FaceU: "Up",
	types.FaceR: "Right",
	types.FaceF: "Front",
	types.FaceD: "Down",
	types.FaceL: "Left",
	types.FaceB: "Back",
}

// Describe spells a move out for someone following along with a cube in
// hand, viewed from the face being turned.
//
//	R  -> "Right clockwise"
//	R' -> "Right anti-clockwise"
//	R2 -> "Right half turn"
func Describe(m types.Move) string {
	name, ok := faceNames[m.Face]
	if !ok {
		return m.Notation()
	}

	switch m.Turn {
	case types.TurnCW:
		return name + " clockwise"
	case types.TurnCCW:
		return name + " anti-clockwise"
	case types.Turn180:
		return name + " half turn"
	}

	return m.Notation() // Fallback to standard notation
}

// DescribeSequence formats moves as a numbered, one-per-line description.
func DescribeSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	width := len(strconv.Itoa(len(moves)))
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = fmt.Sprintf("%*d. %s", width, i+1, Describe(m))
	}
	return strings.Join(lines, "\n")
}
