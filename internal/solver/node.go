package solver

import (
	"github.com/samber/lo"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
	"github.com/SeamusWaldron/gocube_solver/internal/tables"
)

// noMove is the last move of the root node.
const noMove = -1

// node is one search state. Nodes live in a pool indexed by depth, so the
// parent of the node at depth d is the node at depth d-1.
type node struct {
	parent   int
	lastMove int
	depth    int

	// Phase 1.
	flip  int
	twist int
	slice int

	// Phase 2, filled in by initPhase2 once phase 1 is solved.
	parity   int
	urfToDLF int
	frToBR   int
	urToUL   int
	ubToDF   int
	urToDF   int
}

// rootNode encodes every coordinate of c.
func rootNode(c *cube.Cube) node {
	return node{
		parent:   noMove,
		lastMove: noMove,
		flip:     c.Flip(),
		twist:    c.Twist(),
		slice:    c.Slice(),
		parity:   c.CornerParity(),
		urfToDLF: c.URFtoDLF(),
		frToBR:   c.FRtoBR(),
		urToUL:   c.URtoUL(),
		ubToDF:   c.UBtoDF(),
	}
}

// phase1Child sets n to the state reached from parent by move m.
func (n *node) phase1Child(t *tables.Tables, parent *node, m int) {
	n.parent = parent.depth
	n.lastMove = m
	n.depth = parent.depth + 1
	n.flip = int(t.Flip[parent.flip][m])
	n.twist = int(t.Twist[parent.twist][m])
	n.slice = int(t.FRtoBR[parent.slice*cube.NSlice2][m]) / cube.NSlice2
}

// phase2Child sets n to the state reached from parent by phase-2 move m.
func (n *node) phase2Child(t *tables.Tables, parent *node, m int) {
	n.parent = parent.depth
	n.lastMove = m
	n.depth = parent.depth + 1
	n.urfToDLF = int(t.URFtoDLF[parent.urfToDLF][m])
	n.frToBR = int(t.FRtoBR[parent.frToBR][m])
	n.parity = int(t.Parity[parent.parity][m])
	n.urToDF = int(t.URtoDF[parent.urToDF][m])
}

// minDist1 is the phase-1 lower bound.
func (n *node) minDist1(t *tables.Tables) int {
	return max(
		t.SliceTwist.Get(tables.SliceTwistIndex(n.slice, n.twist)),
		t.SliceFlip.Get(tables.SliceFlipIndex(n.slice, n.flip)),
	)
}

// minDist2 is the phase-2 lower bound.
func (n *node) minDist2(t *tables.Tables) int {
	return max(
		t.SliceURFtoDLFPar.Get(tables.Phase2Index(n.urfToDLF, n.frToBR, n.parity)),
		t.SliceURtoDFPar.Get(tables.Phase2Index(n.urToDF, n.frToBR, n.parity)),
	)
}

// nextMoves lists, for each last move (offset by one so the root's noMove
// maps to 0), the moves worth trying next: no second turn of the same face
// and no U after D, R after L or F after B.
type nextMoves [tables.NumMoves + 1][]int

func buildNextMoves(moves []int) *nextMoves {
	var next nextMoves
	for last := noMove; last < tables.NumMoves; last++ {
		for _, m := range moves {
			if last != noMove {
				face, lastFace := m/3, last/3
				if face == lastFace || face == lastFace-3 {
					continue
				}
			}
			next[last+1] = append(next[last+1], m)
		}
	}
	return &next
}

var (
	phase1Next = buildNextMoves(lo.Range(tables.NumMoves))
	phase2Next = buildNextMoves(tables.Phase2Moves)

	isPhase2Move = func() [tables.NumMoves]bool {
		var is [tables.NumMoves]bool
		for _, m := range tables.Phase2Moves {
			is[m] = true
		}
		return is
	}()
)

