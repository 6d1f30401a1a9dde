package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

func solution(t *testing.T, id, alg string) Solution {
	t.Helper()
	moves, err := notation.ParseSequence(alg)
	require.NoError(t, err)
	return Solution{SolveID: id, Moves: moves}
}

func TestRollingHashMatchesFreshHash(t *testing.T) {
	tokens := []uint8{3, 17, 0, 9, 4, 4, 12}
	rolling := NewRollingHash(3)
	for i, tok := range tokens {
		rolling.Roll(tok)
		if !rolling.Ready() {
			continue
		}
		fresh := NewRollingHash(3)
		for _, w := range tokens[i-2 : i+1] {
			fresh.Roll(w)
		}
		assert.Equal(t, fresh.Hash(), rolling.Hash(), "window ending at %d", i)
		assert.Equal(t, tokens[i-2:i+1], rolling.Window())
	}
}

func TestMineNGramsAcrossSolutions(t *testing.T) {
	report := MineNGrams([]Solution{
		solution(t, "a", "R U R' U' F2"),
		solution(t, "b", "D R U R' B"),
		solution(t, "c", "L2"),
	}, 2, 4, 5)

	top3 := report.TopNGrams[3]
	require.NotEmpty(t, top3)
	assert.Equal(t, []string{"R", "U", "R'"}, top3[0].Sequence)
	assert.Equal(t, 2, top3[0].Count)
	assert.Equal(t, []NGramOccurrence{
		{SolveID: "a", StartIndex: 0},
		{SolveID: "b", StartIndex: 1},
	}, top3[0].Occurrences)

	// Nothing of length four repeats.
	assert.NotContains(t, report.TopNGrams, 4)
}

func TestMineNGramsTopK(t *testing.T) {
	report := MineNGrams([]Solution{
		solution(t, "a", "R U R U F B F B"),
	}, 2, 2, 1)
	require.Len(t, report.TopNGrams[2], 1)
	// Ties break on token order, which puts R U ahead of F B.
	assert.Equal(t, []string{"R", "U"}, report.TopNGrams[2][0].Sequence)
}

func TestMovementProfile(t *testing.T) {
	p := AnalyzeMovementProfile([]Solution{
		solution(t, "a", "R U R' U2"),
		solution(t, "b", "R2 D"),
	})

	assert.Equal(t, 6, p.Moves)
	assert.Equal(t, 3, p.FaceCounts[types.FaceR])
	assert.Equal(t, types.FaceR, p.MostUsedFace)
	assert.Equal(t, 2, p.TurnCounts[types.Turn180])
	assert.InDelta(t, 2.0/6, p.HalfTurnRatio(), 1e-9)
	assert.Equal(t, 2, p.FaceSequences["RU"])
	assert.Equal(t, []int{2, 4}, p.SortedLengths())
}

func TestMovementProfileEmpty(t *testing.T) {
	p := AnalyzeMovementProfile(nil)
	assert.Zero(t, p.HalfTurnRatio())
	assert.Empty(t, p.SortedLengths())
	assert.Equal(t, types.Face(""), p.MostUsedFace)
}
