package cube

import (
	"strings"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
)

// ErrInvalidMove is returned, wrapped in a *MoveError, for unknown move
// tokens.
var ErrInvalidMove = notation.ErrInvalidMove

// MoveError names the move token that could not be parsed.
type MoveError = notation.MoveError

// faceMoves are the clockwise quarter turns of U, R, F, D, L, B followed by
// the slice turns E, M, S.
var faceMoves = [9]Cube{
	// U
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		EP:     [12]int8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	// R
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO:     [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
		EP:     [12]int8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	},
	// F
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO:     [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
		EP:     [12]int8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO:     [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		EP:     [12]int8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	},
	// L
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO:     [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
		EP:     [12]int8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	},
	// B
	{
		Center: [6]int8{0, 1, 2, 3, 4, 5},
		CP:     [8]int8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO:     [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
		EP:     [12]int8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO:     [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	// E
	{
		Center: [6]int8{int8(U), int8(F), int8(L), int8(D), int8(B), int8(R)},
		CP:     [8]int8{0, 1, 2, 3, 4, 5, 6, 7},
		EP:     [12]int8{UR, UF, UL, UB, DR, DF, DL, DB, FL, BL, BR, FR},
		EO:     [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
	},
	// M
	{
		Center: [6]int8{int8(B), int8(R), int8(U), int8(F), int8(L), int8(D)},
		CP:     [8]int8{0, 1, 2, 3, 4, 5, 6, 7},
		EP:     [12]int8{UR, UB, UL, DB, DR, UF, DL, DF, FR, FL, BL, BR},
		EO:     [12]int8{0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0},
	},
	// S
	{
		Center: [6]int8{int8(L), int8(U), int8(F), int8(R), int8(D), int8(B)},
		CP:     [8]int8{0, 1, 2, 3, 4, 5, 6, 7},
		EP:     [12]int8{UL, UF, DL, UB, UR, DF, DR, DB, FR, FL, BL, BR},
		EO:     [12]int8{1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0},
	},
}

// compoundRecipes define rotations x y z and wide turns u r f d l b as
// products of face and slice turns.
var compoundRecipes = [9]string{
	"R M' L'", // x
	"U E' D'", // y
	"F S B'",  // z
	"U E'",    // u
	"R M'",    // r
	"F S",     // f
	"D E",     // d
	"L M",     // l
	"B S'",    // b
}

// baseMoves holds every base move, indexed like notation.Symbols.
var baseMoves = buildBaseMoves()

func buildBaseMoves() [notation.NumBase]Cube {
	var moves [notation.NumBase]Cube
	copy(moves[:], faceMoves[:])
	for i, recipe := range compoundRecipes {
		c := New()
		for _, part := range strings.Fields(recipe) {
			tok, err := notation.ParseToken(part)
			if err != nil {
				panic(err)
			}
			for p := 0; p < tok.Power; p++ {
				c.Multiply(&moves[tok.Base])
			}
		}
		moves[len(faceMoves)+i] = *c
	}
	return moves
}

// BaseMove returns base move i (see notation.Symbols).
func BaseMove(i int) Cube {
	return baseMoves[i]
}

// Move applies an algorithm such as "R U R' U'" to the cube. Tokens are
// applied left to right; on an invalid token the moves before it stay
// applied and a *notation.MoveError naming the token is returned.
func (c *Cube) Move(alg string) error {
	for _, part := range strings.Fields(alg) {
		tok, err := notation.ParseToken(part)
		if err != nil {
			return err
		}
		c.applyToken(tok)
	}
	return nil
}

// MustMove is like Move but panics on invalid input. For tests and
// constant algorithms.
func (c *Cube) MustMove(alg string) *Cube {
	if err := c.Move(alg); err != nil {
		panic(err)
	}
	return c
}

func (c *Cube) applyToken(tok notation.Token) {
	for p := 0; p < tok.Power; p++ {
		c.Multiply(&baseMoves[tok.Base])
	}
}

// ApplyMove applies search move index m (face*3 + power-1).
func (c *Cube) ApplyMove(m int) {
	mv := &baseMoves[m/3]
	for p := 0; p <= m%3; p++ {
		c.Multiply(mv)
	}
}

// Inverse returns the algorithm that undoes alg.
func Inverse(alg string) (string, error) {
	return notation.Inverse(alg)
}
