package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

func TestParseToken(t *testing.T) {
	cases := []struct {
		in    string
		base  int
		power int
	}{
		{"U", 0, 1},
		{"R2", 1, 2},
		{"F'", 2, 3},
		{"B`", 5, 3},
		{"D2'", 3, 2},
		{"E", 6, 1},
		{"M'", 7, 3},
		{"x", 9, 1},
		{"z2", 11, 2},
		{"b'", 17, 3},
	}
	for _, c := range cases {
		tok, err := ParseToken(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.base, tok.Base, c.in)
		assert.Equal(t, c.power, tok.Power, c.in)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	for _, in := range []string{"", "Q", "R3", "R''", "Rw", "2"} {
		_, err := ParseToken(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidMove), in)

		var me *MoveError
		require.True(t, errors.As(err, &me), in)
		assert.Equal(t, in, me.Token)
	}
}

func TestInverse(t *testing.T) {
	got, err := Inverse("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "U R U' R'", got)

	got, err = Inverse("x2 M' F2")
	require.NoError(t, err)
	assert.Equal(t, "F2 M x2", got)

	got, err = Inverse("   ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Inverse("R Q")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestParseSequence(t *testing.T) {
	moves, err := ParseSequence("R U2 F'")
	require.NoError(t, err)
	assert.Equal(t, []types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.Turn180},
		{Face: types.FaceF, Turn: types.TurnCCW},
	}, moves)
	assert.Equal(t, "R U2 F'", FormatSequence(moves))

	_, err = ParseSequence("R x")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestTokenIndexMatchesMoveToken(t *testing.T) {
	for i := 0; i < types.NumMoves; i++ {
		m := types.MoveFromToken(uint8(i))
		tok, err := ParseToken(m.Notation())
		require.NoError(t, err)
		assert.Equal(t, i, tok.Index(), m.Notation())
	}
}

func TestDescribeSequence(t *testing.T) {
	moves, err := ParseSequence("R U' F2")
	require.NoError(t, err)
	assert.Equal(t, "1. Right clockwise\n2. Up anti-clockwise\n3. Front half turn", DescribeSequence(moves))
	assert.Equal(t, "", DescribeSequence(nil))
}
