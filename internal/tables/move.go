// Package tables builds the move and pruning tables used by the two-phase
// solver. Tables are built once and never written to afterwards, so one
// *Tables can be shared by any number of concurrent searches.
package tables

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

// NumMoves is the number of search moves: U, R, F, D, L, B each turned
// once, twice or three times.
const NumMoves = 18

// Phase2Moves are the moves that keep a cube inside the phase-2 subgroup:
// U, U2, U', R2, F2, D, D2, D', L2, B2.
var Phase2Moves = []int{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

// MoveTable maps a coordinate value and a move index to the coordinate
// value after the move.
type MoveTable [][NumMoves]int32

// Size returns the number of coordinate values in the table.
func (t MoveTable) Size() int {
	return len(t)
}

// buildMoveTable decodes every value of coord into a scratch cube, turns
// each face three times and records the coordinate after each turn. The
// fourth turn restores the scratch cube.
func buildMoveTable(coord cube.Coordinate) MoveTable {
	multiply := (*cube.Cube).CornerMultiply
	if coord.Pieces == cube.Edges {
		multiply = (*cube.Cube).EdgeMultiply
	}

	table := make(MoveTable, coord.Size)
	c := cube.New()
	for i := 0; i < coord.Size; i++ {
		coord.Set(c, i)
		for face := 0; face < 6; face++ {
			m := cube.BaseMove(face)
			for power := 0; power < 3; power++ {
				multiply(c, &m)
				table[i][face*3+power] = int32(coord.Get(c))
			}
			multiply(c, &m)
		}
	}
	return table
}

// ParityTable gives the permutation parity after a move. Quarter turns
// swap it, half turns keep it.
type ParityTable [cube.NParity][NumMoves]int8

func buildParity() ParityTable {
	var t ParityTable
	for p := 0; p < cube.NParity; p++ {
		for m := 0; m < NumMoves; m++ {
			if m%3 == 1 {
				t[p][m] = int8(p)
			} else {
				t[p][m] = int8(p ^ 1)
			}
		}
	}
	return t
}

// NMerge is the number of URtoUL and UBtoDF values whose edges all sit in
// the U and D layers: C(8,3) * 3!.
const NMerge = 336

// MergeTable combines a URtoUL and a UBtoDF value into URtoDF. Entries are
// -1 where the two edge groups claim the same slot.
type MergeTable [NMerge][NMerge]int16

func buildMergeURtoDF() *MergeTable {
	var ul, df [NMerge][cube.NumEdges]int8
	c := cube.New()
	for i := 0; i < NMerge; i++ {
		c.SetURtoUL(i)
		ul[i] = c.EP
		c.SetUBtoDF(i)
		df[i] = c.EP
	}

	t := new(MergeTable)
	for i := 0; i < NMerge; i++ {
		for j := 0; j < NMerge; j++ {
			t[i][j] = mergeEdges(c, ul[i], df[j])
		}
	}
	return t
}

func mergeEdges(scratch *cube.Cube, a, b [cube.NumEdges]int8) int16 {
	for k := 0; k < cube.NumEdges; k++ {
		if a[k] == -1 {
			continue
		}
		if b[k] != -1 {
			return -1
		}
		b[k] = a[k]
	}
	scratch.EP = b
	return int16(scratch.URtoDF())
}

// Merge returns the URtoDF value for the given URtoUL and UBtoDF values,
// or -1 if they collide.
func (t *MergeTable) Merge(urToUL, ubToDF int) int {
	return int(t[urToUL][ubToDF])
}
