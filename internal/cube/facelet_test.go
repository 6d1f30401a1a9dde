package cube

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestSolvedFacelets(t *testing.T) {
	assert.Equal(t, solvedFacelets, New().Facelets())
	assert.Equal(t, solvedFacelets, New().String())
}

func TestFaceletsAfterU(t *testing.T) {
	got := New().MustMove("U").Facelets()
	// U turns the top row of F onto L.
	assert.Equal(t, "UUUUUUUUU", got[0:9])
	assert.Equal(t, "BBB", got[9:12])
	assert.Equal(t, "RRR", got[18:21])
	assert.Equal(t, "FFF", got[36:39])
	assert.Equal(t, "LLL", got[45:48])
}

func TestFaceletRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := Random()
		d, err := FromFacelets(c.Facelets())
		require.NoError(t, err)
		require.True(t, c.Equal(d), "round trip changed %s", c.Facelets())
	}
}

func TestFaceletRoundTripRotated(t *testing.T) {
	c := New().MustMove("R U x y' F2")
	d, err := FromFacelets(c.Facelets())
	require.NoError(t, err)
	assert.Equal(t, c.Facelets(), d.Facelets())
}

func TestFromFaceletsErrors(t *testing.T) {
	_, err := FromFacelets("UUU")
	assert.True(t, errors.Is(err, ErrInvalidFacelets))

	_, err = FromFacelets(strings.Replace(solvedFacelets, "R", "X", 1))
	assert.True(t, errors.Is(err, ErrInvalidFacelets))
}

func TestFromFaceletsUnknownPiece(t *testing.T) {
	// Two U stickers on one edge match no edge piece.
	b := []byte(solvedFacelets)
	b[fR(2)] = 'U'
	c, err := FromFacelets(string(b))
	require.NoError(t, err)
	assert.Equal(t, int8(-1), c.EP[UR])
	assert.ErrorIs(t, c.Validate(), ErrMissingOrDuplicateEdge)
}

func TestFromFaceletsCenters(t *testing.T) {
	swapped := []byte(solvedFacelets)
	swapped[fR(5)], swapped[fL(5)] = 'L', 'R'
	_, err := FromFacelets(string(swapped))
	assert.ErrorIs(t, err, ErrInvalidFacelets)

	twoU := []byte(solvedFacelets)
	twoU[fD(5)] = 'U'
	_, err = FromFacelets(string(twoU))
	assert.ErrorIs(t, err, ErrInvalidFacelets)

	for _, rot := range []string{"x", "y'", "z2", "x y", "x' z"} {
		c, err := FromFacelets(New().MustMove(rot).Facelets())
		require.NoError(t, err, rot)
		assert.True(t, c.IsSolved(), rot)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New().Validate())

	for i := 0; i < 100; i++ {
		require.NoError(t, Random().Validate())
	}

	c := New()
	c.CP[URF], c.CP[UFL] = c.CP[UFL], c.CP[URF]
	assert.ErrorIs(t, c.Validate(), ErrParityMismatch)

	c = New()
	c.CP[URF] = UFL
	assert.ErrorIs(t, c.Validate(), ErrMissingOrDuplicateCorner)

	c = New()
	c.EP[UR] = UF
	assert.ErrorIs(t, c.Validate(), ErrMissingOrDuplicateEdge)

	c = New()
	c.CO[URF] = 1
	assert.ErrorIs(t, c.Validate(), ErrCornerTwist)

	c = New()
	c.EO[UR] = 1
	assert.ErrorIs(t, c.Validate(), ErrEdgeFlip)
}

func TestRandomizeKeepsCenters(t *testing.T) {
	c := New().MustMove("y")
	centers := c.Center
	c.Randomize()
	assert.Equal(t, centers, c.Center)
}

func TestCanonicalizeRotatedSolved(t *testing.T) {
	for _, rot := range []string{"", "x", "y'", "z2", "x y", "y z'", "x2 z", "x' y2"} {
		c := New().MustMove(rot)
		o, canon := Canonicalize(c)
		assert.True(t, canon.IsIdentity(), "rotation %q: %s", rot, canon.Debug())
		assert.LessOrEqual(t, len(strings.Fields(o.Rotation)), 2)
		assert.True(t, c.Clone().MustMove(o.Rotation).Equal(canon))
	}
}

func TestTranslateSingleMove(t *testing.T) {
	names := []string{"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'", "D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'"}
	for _, setup := range []string{"y R", "x F'", "z2 U", "x y' L2", "z B"} {
		c := New().MustMove(setup)
		o, canon := Canonicalize(c)

		found := ""
		for m, name := range names {
			next := canon.Clone()
			next.ApplyMove(m)
			if next.IsIdentity() {
				found = name
				break
			}
		}
		require.NotEmpty(t, found, "setup %q: no single move solves the canonical cube", setup)

		seq, err := o.Translate(found)
		require.NoError(t, err)
		assert.True(t, c.Clone().MustMove(seq).IsSolved(), "setup %q: %q translated to %q", setup, found, seq)
	}
}

func TestTranslateRejectsCompound(t *testing.T) {
	o, _ := Canonicalize(New())
	_, err := o.Translate("R x")
	assert.ErrorIs(t, err, ErrInvalidMove)

	seq, err := o.Translate("R U' F2")
	require.NoError(t, err)
	assert.Equal(t, "R U' F2", seq)
}
