// Package notation provides move notation parsing and conversion utilities.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

// ErrInvalidMove is wrapped by every MoveError.
var ErrInvalidMove = errors.New("gocube: invalid move token")

// MoveError reports the move token that could not be parsed.
type MoveError struct {
	Token string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("gocube: invalid move token %q", e.Token)
}

func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// Symbols holds every base move symbol, indexed by base move number:
// face turns (U R F D L B), slice turns (E M S), whole-cube rotations
// (x y z) and wide turns (u r f d l b).
const Symbols = "URFDLBEMSxyzurfdlb"

// NumBase is the number of base moves.
const NumBase = len(Symbols)

// Token is one parsed move: a base move applied Power (1, 2 or 3) times.
type Token struct {
	Base  int
	Power int
}

// String returns the notation for the token, e.g. "x'", "R2".
func (t Token) String() string {
	suffix := ""
	switch t.Power {
	case 2:
		suffix = "2"
	case 3:
		suffix = "'"
	}
	return Symbols[t.Base:t.Base+1] + suffix
}

// Inverse returns the token that undoes t.
func (t Token) Inverse() Token {
	return Token{Base: t.Base, Power: 4 - t.Power}
}

// IsFaceMove reports whether the token turns a single outer face.
func (t Token) IsFaceMove() bool {
	return t.Base < len(types.Faces)
}

// Index returns the search move index (face*3 + power-1). Only valid for
// face moves.
func (t Token) Index() int {
	return t.Base*3 + t.Power - 1
}

// ParseToken parses a single move token such as R, R', R2, x, M'.
func ParseToken(s string) (Token, error) {
	if len(s) == 0 {
		return Token{}, &MoveError{Token: s}
	}

	base := strings.IndexByte(Symbols, s[0])
	if base < 0 {
		return Token{}, &MoveError{Token: s}
	}

	power := 1
	switch s[1:] {
	case "":
	case "'", "`":
		power = 3
	case "2", "2'", "2`":
		power = 2
	default:
		return Token{}, &MoveError{Token: s}
	}

	return Token{Base: base, Power: power}, nil
}

// ParseAlgorithm parses a whitespace-separated algorithm. It fails on the
// first invalid token.
func ParseAlgorithm(alg string) ([]Token, error) {
	parts := strings.Fields(alg)
	tokens := make([]Token, 0, len(parts))
	for _, part := range parts {
		tok, err := ParseToken(part)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// FormatTokens formats tokens as a space-separated string.
func FormatTokens(tokens []Token) string {
	return strings.Join(lo.Map(tokens, func(t Token, _ int) string {
		return t.String()
	}), " ")
}

// Inverse returns the algorithm that undoes alg: the tokens reversed, each
// one inverted. "R U R' U'" becomes "U R U' R'".
func Inverse(alg string) (string, error) {
	tokens, err := ParseAlgorithm(alg)
	if err != nil {
		return "", err
	}
	n := len(tokens)
	inv := lo.Map(tokens, func(_ Token, i int) Token {
		return tokens[n-1-i].Inverse()
	})
	return FormatTokens(inv), nil
}

// ParseNotation parses a standard face-move string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseNotation(s string) (types.Move, bool) {
	tok, err := ParseToken(strings.TrimSpace(s))
	if err != nil || !tok.IsFaceMove() {
		return types.Move{}, false
	}
	return types.MoveFromToken(uint8(tok.Index())), true
}

// ParseSequence parses a space-separated sequence of face moves.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for _, part := range parts {
		move, ok := ParseNotation(part)
		if !ok {
			return nil, &MoveError{Token: part}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
