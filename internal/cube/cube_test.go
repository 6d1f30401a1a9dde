package cube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.IsIdentity() {
		t.Error("New cube should be the identity")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New().MustMove("R")
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestQuarterTurnFourTimes_AllFaces(t *testing.T) {
	for _, face := range []string{"U", "R", "F", "D", "L", "B", "E", "M", "S", "x", "y", "z", "u", "r", "f", "d", "l", "b"} {
		c := New()
		for i := 0; i < 4; i++ {
			c.MustMove(face)
		}
		if !c.IsIdentity() {
			t.Errorf("%s x 4 should return to identity", face)
			t.Log(c.Debug())
		}
	}
}

func TestHalfTurnTwice_ReturnsToSolved(t *testing.T) {
	c := New().MustMove("R2 R2 U2 U2")
	if !c.IsIdentity() {
		t.Error("R2 R2 U2 U2 should return to identity")
		t.Log(c.Debug())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		c.MustMove("R U R' U'")
	}
	if !c.IsIdentity() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.Debug())
	}
}

func TestMoveThenInverse(t *testing.T) {
	algs := []string{
		"R U R' U'",
		"F R U' R' U' R U R' F' R U R' U' R' F R F'",
		"M2 E S' x y2 z'",
		"r u' f2 d l' b",
	}
	for _, alg := range algs {
		inv, err := Inverse(alg)
		if err != nil {
			t.Fatalf("Inverse(%q): %v", alg, err)
		}
		c := New().MustMove(alg).MustMove(inv)
		if !c.IsIdentity() {
			t.Errorf("%q followed by %q should be identity", alg, inv)
		}
	}
}

func TestInverseNotation(t *testing.T) {
	got, err := Inverse("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if got != "U R U' R'" {
		t.Errorf("Inverse = %q, want %q", got, "U R U' R'")
	}
}

func TestMultiplyIsNotCommutative(t *testing.T) {
	ru := New().MustMove("R U")
	ur := New().MustMove("U R")
	if ru.Equal(ur) {
		t.Error("R U and U R should differ")
	}
}

func TestMultiplyIsAssociative(t *testing.T) {
	r, u, f := BaseMove(1), BaseMove(0), BaseMove(2)

	left := New()
	left.Multiply(&r)
	left.Multiply(&u)
	left.Multiply(&f)

	uf := u
	uf.Multiply(&f)
	right := New()
	right.Multiply(&r)
	right.Multiply(&uf)

	if !left.Equal(right) {
		t.Error("(R*U)*F should equal R*(U*F)")
	}
}

func TestApplyMoveMatchesNotation(t *testing.T) {
	names := []string{"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'", "D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'"}
	for m, name := range names {
		a := New()
		a.ApplyMove(m)
		b := New().MustMove(name)
		if !a.Equal(b) {
			t.Errorf("ApplyMove(%d) differs from %s", m, name)
		}
	}
}

func TestMoveInvalidToken(t *testing.T) {
	c := New()
	err := c.Move("R U Q F")
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Token != "Q" {
		t.Errorf("expected error naming Q, got %v", err)
	}
	if !c.Equal(New().MustMove("R U")) {
		t.Error("moves before the bad token should stay applied")
	}
}

func TestRotatedCubeIsSolved(t *testing.T) {
	for _, rot := range []string{"x", "y", "z", "x2", "y'", "x y", "z2 y", "x' z"} {
		c := New().MustMove(rot)
		if c.IsIdentity() {
			t.Errorf("%s should move the centers", rot)
		}
		if !c.IsSolved() {
			t.Errorf("%s applied to a solved cube should still be solved", rot)
		}
	}
}

func TestCompoundMovesMatchRecipes(t *testing.T) {
	for i, recipe := range compoundRecipes {
		sym := notation.Symbols[len(faceMoves)+i : len(faceMoves)+i+1]
		a := New().MustMove(sym)
		b := New().MustMove(recipe)
		if !a.Equal(b) {
			t.Errorf("%s should equal %q", sym, recipe)
		}
	}
}
