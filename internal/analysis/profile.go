package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// MovementProfile counts which faces and turns a set of solutions uses.
type MovementProfile struct {
	Moves         int                `json:"moves"`
	FaceCounts    map[types.Face]int `json:"face_counts"`
	TurnCounts    map[types.Turn]int `json:"turn_counts"`
	MostUsedFace  types.Face         `json:"most_used_face"`
	MostUsedTurn  types.Turn         `json:"most_used_turn"`
	FaceSequences map[string]int     `json:"face_sequences"` // e.g., "RU" -> count
	Lengths       map[int]int        `json:"lengths"`        // Solution length -> count
}

// AnalyzeMovementProfile analyzes which faces and turns are most used.
func AnalyzeMovementProfile(solutions []Solution) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[types.Face]int),
		TurnCounts:    make(map[types.Turn]int),
		FaceSequences: make(map[string]int),
		Lengths:       make(map[int]int),
	}

	for _, s := range solutions {
		profile.Lengths[len(s.Moves)]++
		profile.Moves += len(s.Moves)

		for i, m := range s.Moves {
			profile.FaceCounts[m.Face]++
			profile.TurnCounts[m.Turn]++

			// Track 2-move face sequences
			if i > 0 {
				seq := string(s.Moves[i-1].Face) + string(m.Face)
				profile.FaceSequences[seq]++
			}
		}
	}

	// Ties go to the earlier face in search order.
	maxFaceCount := 0
	for _, face := range types.Faces {
		if count := profile.FaceCounts[face]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	maxTurnCount := 0
	for _, turn := range []types.Turn{types.TurnCW, types.Turn180, types.TurnCCW} {
		if count := profile.TurnCounts[turn]; count > maxTurnCount {
			maxTurnCount = count
			profile.MostUsedTurn = turn
		}
	}

	return profile
}

// HalfTurnRatio returns the share of moves that are half turns.
func (p *MovementProfile) HalfTurnRatio() float64 {
	if p.Moves == 0 {
		return 0
	}
	return float64(p.TurnCounts[types.Turn180]) / float64(p.Moves)
}

// SortedLengths returns the distinct solution lengths, shortest first.
func (p *MovementProfile) SortedLengths() []int {
	lengths := lo.Keys(p.Lengths)
	sort.Ints(lengths)
	return lengths
}
