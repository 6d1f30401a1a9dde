package gocube

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if c.Phase() != PhaseSolved {
		t.Errorf("New cube phase = %v, want solved", c.Phase())
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R, R, R, R)
	if !c.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPermTwiceIsIdentity(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm twice should return to solved")
	}
}

func TestApplyMatchesNotation(t *testing.T) {
	a := NewCube()
	a.Apply(R, U2, FPrime, D, L2, BPrime)
	b := NewCube()
	if err := b.ApplyNotation("R U2 F' D L2 B'"); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("Apply and ApplyNotation should agree")
	}
}

func TestApplyNotationInvalid(t *testing.T) {
	c := NewCube()
	err := c.ApplyNotation("R X")
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Token != "X" {
		t.Fatalf("expected MoveError naming X, got %v", err)
	}
	if !errors.Is(err, ErrInvalidMove) {
		t.Error("error should unwrap to ErrInvalidMove")
	}
}

func TestParseAndFormatMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 4 || moves[2] != RPrime {
		t.Errorf("unexpected moves %v", moves)
	}
	if got := FormatMoves(moves); got != "R U R' U'" {
		t.Errorf("FormatMoves = %q", got)
	}
	if _, err := ParseMoves("R x"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("rotations are not face moves, got %v", err)
	}
	if _, err := ParseMove("Q"); err == nil {
		t.Error("expected error for Q")
	}
}

func TestInverse(t *testing.T) {
	got, err := Inverse("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if got != "U R U' R'" {
		t.Errorf("Inverse = %q, want %q", got, "U R U' R'")
	}

	for _, alg := range []string{"R U R' U'", "F2 D' L B2", "M' E2 S", "x R y' u2 z'"} {
		inv, err := Inverse(alg)
		if err != nil {
			t.Fatalf("Inverse(%q): %v", alg, err)
		}
		c := NewCube()
		if err := c.ApplyNotation(alg + " " + inv); err != nil {
			t.Fatal(err)
		}
		if !c.Equal(NewCube()) {
			t.Errorf("%q then %q should restore the cube", alg, inv)
		}
	}
}

func TestSolveIdentity(t *testing.T) {
	got, err := Solve(NewCube())
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("Solve(solved) = %q, want empty", got)
	}
}

func TestSolveSexyMove(t *testing.T) {
	c := NewCube()
	c.Apply(SexyMove...)
	solution, err := c.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Fields(solution)); n > 22 {
		t.Errorf("solution has %d moves", n)
	}
	if err := c.ApplyNotation(solution); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Errorf("solution %q does not solve the cube", solution)
	}
}

func TestSolveRandom(t *testing.T) {
	for i := 0; i < 3; i++ {
		c := RandomCube()
		solution, err := Solve(c, WithContext(context.Background()))
		if err != nil {
			t.Fatal(err)
		}
		c.ApplyNotation(solution)
		if !c.IsSolved() {
			t.Errorf("solution %q does not solve the cube", solution)
		}
	}
}

func TestSolveRejectsInvalidCube(t *testing.T) {
	c, err := FromFacelets("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB")
	if err != nil {
		t.Fatal(err)
	}
	c.c.CO[0] = 1
	if _, err := Solve(c); !errors.Is(err, ErrCornerTwist) {
		t.Errorf("expected ErrCornerTwist, got %v", err)
	}
}

func TestSolveDepthTooSmall(t *testing.T) {
	c := NewCube()
	c.Apply(SexyMove...)
	if _, err := Solve(c, WithMaxDepth(3)); !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected ErrNoSolution, got %v", err)
	}
}

func TestScramble(t *testing.T) {
	scramble, err := Scramble()
	if err != nil {
		t.Fatal(err)
	}
	c := NewCube()
	if err := c.ApplyNotation(scramble); err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("scrambled cube invalid: %v", err)
	}
}

func TestRandomMoveScramble(t *testing.T) {
	moves := RandomMoveScramble(0)
	if len(moves) != DefaultScrambleLength {
		t.Fatalf("got %d moves, want %d", len(moves), DefaultScrambleLength)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face.Axis() == moves[i-1].Face.Axis() {
			t.Errorf("moves %d and %d share an axis: %s %s", i-1, i, moves[i-1], moves[i])
		}
	}
	if n := len(RandomMoveScramble(7)); n != 7 {
		t.Errorf("got %d moves, want 7", n)
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	start := NewCube()
	start.Apply(R)
	tracker := NewTracker(start)
	if tracker.CurrentPhase() != PhaseScrambled {
		t.Fatalf("start phase = %v", tracker.CurrentPhase())
	}

	var keys []string
	tracker.SetPhaseCallback(func(p Phase, key string) {
		keys = append(keys, key)
	})

	tracker.ApplyMove(UPrime)
	tracker.ApplyMove(U)
	tracker.ApplyMove(RPrime)

	if !tracker.IsSolved() {
		t.Error("R R' should solve the cube")
	}
	if len(keys) != 1 || keys[0] != "solved" {
		t.Errorf("callbacks = %v, want [solved]", keys)
	}
	if tracker.HighestPhase() != PhaseSolved {
		t.Errorf("highest phase = %v", tracker.HighestPhase())
	}
	if !start.Equal(func() *Cube { c := NewCube(); c.Apply(R); return c }()) {
		t.Error("tracker should not modify the start cube")
	}
}

func TestTrackerSubgroupCallback(t *testing.T) {
	start := NewCube()
	start.Apply(U, R)
	tracker := NewTracker(start)

	var phases []Phase
	tracker.SetPhaseCallback(func(p Phase, _ string) {
		phases = append(phases, p)
	})
	tracker.ApplyMoves([]Move{RPrime, UPrime})

	if len(phases) != 2 || phases[0] != PhaseSubgroup || phases[1] != PhaseSolved {
		t.Errorf("phases = %v, want [subgroup solved]", phases)
	}
}
