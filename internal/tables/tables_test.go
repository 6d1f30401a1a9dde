package tables

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}

// inverseMove maps a move index to the index that undoes it.
func inverseMove(m int) int {
	return m - m%3 + 2 - m%3
}

func TestMoveTableInverseConsistency(t *testing.T) {
	tbl := Default()
	tables := map[string]MoveTable{
		"twist":    tbl.Twist,
		"flip":     tbl.Flip,
		"FRtoBR":   tbl.FRtoBR,
		"URFtoDLF": tbl.URFtoDLF,
		"URtoUL":   tbl.URtoUL,
		"UBtoDF":   tbl.UBtoDF,
	}
	for name, mt := range tables {
		for c := 0; c < mt.Size(); c++ {
			for m := 0; m < NumMoves; m++ {
				if got := mt[mt[c][m]][inverseMove(m)]; int(got) != c {
					t.Fatalf("%s: move %d then %d from %d gave %d", name, m, inverseMove(m), c, got)
				}
			}
		}
	}
}

func TestURtoDFTableInsideSubgroup(t *testing.T) {
	tbl := Default()
	for c := 0; c < cube.NURtoDF; c++ {
		for _, m := range Phase2Moves {
			next := tbl.URtoDF[c][m]
			require.Less(t, int(next), cube.NURtoDF)
			require.Equal(t, int32(c), tbl.URtoDF[next][inverseMove(m)])
		}
	}
}

func TestMoveTablesMatchCube(t *testing.T) {
	tbl := Default()
	for i := 0; i < 200; i++ {
		c := cube.Random()
		m := frand.Intn(NumMoves)
		d := c.Clone()
		d.ApplyMove(m)

		assert.Equal(t, d.Twist(), int(tbl.Twist[c.Twist()][m]))
		assert.Equal(t, d.Flip(), int(tbl.Flip[c.Flip()][m]))
		assert.Equal(t, d.FRtoBR(), int(tbl.FRtoBR[c.FRtoBR()][m]))
		assert.Equal(t, d.URFtoDLF(), int(tbl.URFtoDLF[c.URFtoDLF()][m]))
		assert.Equal(t, d.URtoUL(), int(tbl.URtoUL[c.URtoUL()][m]))
		assert.Equal(t, d.UBtoDF(), int(tbl.UBtoDF[c.UBtoDF()][m]))
		assert.Equal(t, d.CornerParity(), int(tbl.Parity[c.CornerParity()][m]))
	}
}

func TestParityTable(t *testing.T) {
	p := buildParity()
	assert.Equal(t, int8(1), p[0][0])
	assert.Equal(t, int8(0), p[0][1])
	assert.Equal(t, int8(1), p[0][2])
	assert.Equal(t, int8(0), p[1][3])
	assert.Equal(t, int8(1), p[1][4])
}

func TestMergeURtoDF(t *testing.T) {
	tbl := Default()
	solved := cube.New()
	assert.Equal(t, 0, tbl.Merge.Merge(solved.URtoUL(), solved.UBtoDF()))

	c := cube.New().MustMove("U R2 D' F2 U2 L2 B2 D")
	assert.Equal(t, c.URtoDF(), tbl.Merge.Merge(c.URtoUL(), c.UBtoDF()))

	// Both groups decoded from 0 claim slots UR, UF, UL.
	assert.Equal(t, -1, tbl.Merge.Merge(0, 0))
}

func TestPruningPacking(t *testing.T) {
	p := newPruning(20)
	for i := 0; i < 20; i++ {
		assert.Equal(t, Unknown, p.Get(i))
	}
	p.set(0, 3)
	p.set(7, 14)
	p.set(8, 1)
	assert.Equal(t, 3, p.Get(0))
	assert.Equal(t, Unknown, p.Get(1))
	assert.Equal(t, 14, p.Get(7))
	assert.Equal(t, 1, p.Get(8))
	p.set(7, 2)
	assert.Equal(t, 2, p.Get(7))
	assert.Equal(t, 1, p.Get(8))
	assert.Equal(t, 12, p.Bytes())
}

func TestBuildPruningOnCycle(t *testing.T) {
	// A ring of 10 states, moves step one either way.
	p, err := buildPruning(context.Background(), 10, []int{0, 1}, func(i, m int) int {
		if m == 0 {
			return (i + 1) % 10
		}
		return (i + 9) % 10
	})
	require.NoError(t, err)
	want := []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1}
	for i, w := range want {
		assert.Equal(t, w, p.Get(i), "index %d", i)
	}
}

func TestBuildPruningCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := buildPruning(ctx, 10, []int{0}, func(i, m int) int { return (i + 1) % 10 })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPruningConsistent(t *testing.T) {
	tbl := Default()
	checks := []struct {
		name  string
		p     Pruning
		size  int
		moves []int
		next  func(i, m int) int
	}{
		{"sliceTwist", tbl.SliceTwist, NSliceTwist, phase1Moves, func(i, m int) int {
			return SliceTwistIndex(int(tbl.FRtoBR[(i%cube.NSlice1)*cube.NSlice2][m])/cube.NSlice2, int(tbl.Twist[i/cube.NSlice1][m]))
		}},
		{"sliceFlip", tbl.SliceFlip, NSliceFlip, phase1Moves, func(i, m int) int {
			return SliceFlipIndex(int(tbl.FRtoBR[(i%cube.NSlice1)*cube.NSlice2][m])/cube.NSlice2, int(tbl.Flip[i/cube.NSlice1][m]))
		}},
	}
	for _, c := range checks {
		assert.Equal(t, 0, c.p.Get(0), c.name)
		for n := 0; n < 5000; n++ {
			i := frand.Intn(c.size)
			d := c.p.Get(i)
			require.NotEqual(t, Unknown, d, "%s: index %d unlabelled", c.name, i)
			if i != 0 {
				require.NotZero(t, d, "%s: index %d", c.name, i)
			}
			for _, m := range c.moves {
				nd := c.p.Get(c.next(i, m))
				require.LessOrEqual(t, nd-d, 1, "%s: %d -> %d", c.name, i, m)
				require.LessOrEqual(t, d-nd, 1, "%s: %d -> %d", c.name, i, m)
			}
		}
	}
}

func TestPhaseTwoPruningOnKnownCubes(t *testing.T) {
	tbl := Default()
	for _, tc := range []struct {
		alg  string
		want int
	}{
		{"", 0},
		{"U", 1},
		{"R2", 1},
		{"U R2", 2},
	} {
		c := cube.New().MustMove(tc.alg)
		i := Phase2Index(c.URFtoDLF(), c.FRtoBR(), c.CornerParity())
		assert.Equal(t, tc.want, tbl.SliceURFtoDLFPar.Get(i), tc.alg)
	}
	c := cube.New().MustMove("R")
	i := SliceTwistIndex(c.Slice(), c.Twist())
	assert.Equal(t, 1, tbl.SliceTwist.Get(i))
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
