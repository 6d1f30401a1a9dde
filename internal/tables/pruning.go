package tables

import (
	"context"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

// Unknown marks a pruning entry that no BFS layer has reached.
const Unknown = 0xF

// Pruning holds a 4-bit distance lower bound per index, eight per word.
type Pruning []uint32

func newPruning(size int) Pruning {
	p := make(Pruning, (size+7)/8)
	for i := range p {
		p[i] = 0xFFFFFFFF
	}
	return p
}

// Get returns the entry at index i.
func (p Pruning) Get(i int) int {
	return int(p[i>>3]>>(uint(i&7)<<2)) & 0xF
}

// Bytes returns the memory held by the table.
func (p Pruning) Bytes() int {
	return len(p) * 4
}

func (p Pruning) set(i, v int) {
	shift := uint(i&7) << 2
	p[i>>3] = p[i>>3]&^(0xF<<shift) | uint32(v&0xF)<<shift
}

// buildPruning labels every index with its distance from index 0 using
// only moves. next returns the index reached from i by move m. Layers are
// expanded until every index is labelled, a layer adds nothing, or the
// next label would collide with Unknown.
func buildPruning(ctx context.Context, size int, moves []int, next func(i, m int) int) (Pruning, error) {
	p := newPruning(size)
	p.set(0, 0)
	done := 1
	for depth := 0; done < size && depth < Unknown-1; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		added := 0
		for i := 0; i < size; i++ {
			if p.Get(i) != depth {
				continue
			}
			for _, m := range moves {
				j := next(i, m)
				if p.Get(j) == Unknown {
					p.set(j, depth+1)
					added++
				}
			}
		}
		if added == 0 {
			break
		}
		done += added
	}
	return p, nil
}

// Pruning table sizes.
const (
	NSliceTwist    = cube.NSlice1 * cube.NTwist
	NSliceFlip     = cube.NSlice1 * cube.NFlip
	NURFtoDLFSlice = cube.NURFtoDLF * cube.NSlice2 * cube.NParity
	NURtoDFSlice   = cube.NURtoDF * cube.NSlice2 * cube.NParity
)

// SliceTwistIndex is the phase-1 index of slice and twist.
func SliceTwistIndex(slice, twist int) int {
	return cube.NSlice1*twist + slice
}

// SliceFlipIndex is the phase-1 index of slice and flip.
func SliceFlipIndex(slice, flip int) int {
	return cube.NSlice1*flip + slice
}

// Phase2Index is the phase-2 index of a permutation coordinate (URFtoDLF
// or URtoDF), FRtoBR and parity.
func Phase2Index(perm, frToBR, parity int) int {
	return (perm*cube.NSlice2+frToBR)*cube.NParity + parity
}

func buildSliceTwist(ctx context.Context, frToBR, twist MoveTable) (Pruning, error) {
	return buildPruning(ctx, NSliceTwist, phase1Moves, func(i, m int) int {
		slice, tw := i%cube.NSlice1, i/cube.NSlice1
		return SliceTwistIndex(int(frToBR[slice*cube.NSlice2][m])/cube.NSlice2, int(twist[tw][m]))
	})
}

func buildSliceFlip(ctx context.Context, frToBR, flip MoveTable) (Pruning, error) {
	return buildPruning(ctx, NSliceFlip, phase1Moves, func(i, m int) int {
		slice, fl := i%cube.NSlice1, i/cube.NSlice1
		return SliceFlipIndex(int(frToBR[slice*cube.NSlice2][m])/cube.NSlice2, int(flip[fl][m]))
	})
}

func buildPhase2(ctx context.Context, size int, perm, frToBR MoveTable, parity *ParityTable) (Pruning, error) {
	return buildPruning(ctx, size, Phase2Moves, func(i, m int) int {
		par := i % cube.NParity
		fr := (i / cube.NParity) % cube.NSlice2
		pm := i / (cube.NParity * cube.NSlice2)
		return Phase2Index(int(perm[pm][m]), int(frToBR[fr][m]), int(parity[par][m]))
	})
}

var phase1Moves = lo.Range(NumMoves)
