// Package solver finds move sequences that solve a cube with Kociemba's
// two-phase algorithm. Phase 1 brings the cube into the subgroup generated
// by U, D and half turns of the side faces; phase 2 solves it inside that
// subgroup. Both phases are iterative-deepening searches cut off by the
// pruning tables.
package solver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
	"github.com/SeamusWaldron/gocube_solver/internal/tables"
	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// ErrNoSolution is returned when no solution fits in the maximum depth.
var ErrNoSolution = errors.New("gocube: no solution found within the maximum depth")

// DefaultMaxDepth is the move budget used when none is given.
const DefaultMaxDepth = 22

// checkEvery is how many node expansions pass between context checks.
const checkEvery = 4096

// Solver searches for solutions using a shared set of tables. It holds no
// per-search state, so one Solver may be used from many goroutines.
type Solver struct {
	tables *tables.Tables
}

// New creates a solver over t.
func New(t *tables.Tables) *Solver {
	return &Solver{tables: t}
}

// Result describes a finished search.
type Result struct {
	Moves       string
	Length      int
	Phase1Depth int
	Nodes       [2]int
	Rotation    string
	Took        time.Duration
}

// Solve returns a solution for c of at most maxDepth moves. The cube may be
// in any orientation; the moves are named for the orientation it is in.
// The cube must be valid; see cube.Validate.
func (s *Solver) Solve(ctx context.Context, c *cube.Cube, maxDepth int) (string, error) {
	res, err := s.Search(ctx, c, maxDepth)
	if err != nil {
		return "", err
	}
	return res.Moves, nil
}

// Search is like Solve but also reports search statistics.
func (s *Solver) Search(ctx context.Context, c *cube.Cube, maxDepth int) (Result, error) {
	start := time.Now()
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	orientation, canon := cube.Canonicalize(c)
	srch := &search{
		ctx:      ctx,
		tables:   s.tables,
		maxDepth: maxDepth,
		nodes:    make([]node, maxDepth+1),
	}
	srch.nodes[0] = rootNode(canon)

	moves, err := srch.run()
	res := Result{
		Phase1Depth: srch.phase1Depth,
		Nodes:       srch.expanded,
		Rotation:    orientation.Rotation,
		Took:        time.Since(start),
	}
	observe(res, err)
	if err != nil {
		log.Debug().Err(err).Int("max-depth", maxDepth).Dur("took", res.Took).Msg("search-failed")
		return res, err
	}

	res.Moves, err = orientation.Translate(formatMoves(moves))
	if err != nil {
		return res, err
	}
	res.Length = len(moves)

	log.Info().
		Str("moves", res.Moves).
		Int("length", res.Length).
		Int("phase1-depth", res.Phase1Depth).
		Int("nodes1", res.Nodes[0]).
		Int("nodes2", res.Nodes[1]).
		Dur("took", res.Took).
		Msg("solved")
	return res, nil
}

func formatMoves(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = types.MoveFromToken(uint8(m)).Notation()
	}
	return strings.Join(parts, " ")
}

// search is the state of one Solve call. Its node pool is never shared.
type search struct {
	ctx      context.Context
	tables   *tables.Tables
	maxDepth int
	nodes    []node

	found       bool
	err         error
	solution    int
	phase1Depth int
	expanded    [2]int
	sinceCheck  int
}

// run deepens the phase-1 bound until a full solution is found.
func (s *search) run() ([]int, error) {
	for depth := 0; depth <= s.maxDepth; depth++ {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}
		log.Debug().Int("depth", depth).Int("nodes", s.expanded[0]).Msg("phase1-iteration")
		s.phase1(0, depth)
		if s.err != nil {
			return nil, s.err
		}
		if s.found {
			return s.path(s.solution), nil
		}
	}
	return nil, ErrNoSolution
}

// stop reports whether the search should unwind, checking the context
// every checkEvery expansions.
func (s *search) stop() bool {
	if s.found || s.err != nil {
		return true
	}
	s.sinceCheck++
	if s.sinceCheck >= checkEvery {
		s.sinceCheck = 0
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return true
		}
	}
	return false
}

func (s *search) phase1(at, depth int) {
	n := &s.nodes[at]
	if depth == 0 {
		if n.minDist1(s.tables) == 0 && (n.lastMove == noMove || !isPhase2Move[n.lastMove]) {
			s.startPhase2(at)
		}
		return
	}
	if n.minDist1(s.tables) > depth {
		return
	}
	for _, m := range phase1Next[n.lastMove+1] {
		if s.stop() {
			return
		}
		s.expanded[0]++
		s.nodes[at+1].phase1Child(s.tables, n, m)
		s.phase1(at+1, depth-1)
	}
}

// startPhase2 runs phase 2 from the phase-1 solution ending at node at,
// with whatever move budget phase 1 left over.
func (s *search) startPhase2(at int) {
	s.initPhase2(at)
	top := &s.nodes[at]
	top.urToDF = s.tables.Merge.Merge(top.urToUL, top.ubToDF)
	if top.urToDF < 0 {
		return
	}
	for depth := 0; depth <= s.maxDepth-at; depth++ {
		s.phase2(at, depth)
		if s.found || s.err != nil {
			if s.found {
				s.phase1Depth = at
			}
			return
		}
	}
}

// initPhase2 fills in the phase-2 coordinates of node at and all its
// ancestors by replaying their moves from the root.
func (s *search) initPhase2(at int) {
	t := s.tables
	for d := 1; d <= at; d++ {
		n, p := &s.nodes[d], &s.nodes[d-1]
		m := n.lastMove
		n.urfToDLF = int(t.URFtoDLF[p.urfToDLF][m])
		n.frToBR = int(t.FRtoBR[p.frToBR][m])
		n.parity = int(t.Parity[p.parity][m])
		n.urToUL = int(t.URtoUL[p.urToUL][m])
		n.ubToDF = int(t.UBtoDF[p.ubToDF][m])
	}
}

func (s *search) phase2(at, depth int) {
	n := &s.nodes[at]
	if depth == 0 {
		if n.minDist2(s.tables) == 0 {
			s.found = true
			s.solution = at
		}
		return
	}
	if n.minDist2(s.tables) > depth {
		return
	}
	for _, m := range phase2Next[n.lastMove+1] {
		if s.stop() {
			return
		}
		s.expanded[1]++
		s.nodes[at+1].phase2Child(s.tables, n, m)
		s.phase2(at+1, depth-1)
	}
}

// path walks the parent chain from node at back to the root and returns
// the moves in the order they are played.
func (s *search) path(at int) []int {
	moves := make([]int, s.nodes[at].depth)
	for i := at; s.nodes[i].parent != noMove; i = s.nodes[i].parent {
		moves[s.nodes[i].depth-1] = s.nodes[i].lastMove
	}
	return moves
}
