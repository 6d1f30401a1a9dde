package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestRenderNetPlain(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(renderNet(solvedFacelets, false), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, strings.Repeat(" ", 9)+" U  U  U ", lines[0])
	assert.Equal(t, " L  L  L  F  F  F  R  R  R  B  B  B ", lines[3])
	assert.Equal(t, strings.Repeat(" ", 9)+" D  D  D ", lines[8])
}

func TestRenderNetFollowsFaceletOrder(t *testing.T) {
	c := gocube.NewCube()
	c.Apply(gocube.U)
	net := renderNet(c.Facelets(), false)
	lines := strings.Split(net, "\n")

	// After U the front row shows the right face's stickers.
	assert.Equal(t, " F  F  F  R  R  R  B  B  B  L  L  L ", lines[3])
	assert.Equal(t, " L  L  L  F  F  F  R  R  R  B  B  B ", lines[4])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "R U", truncate("R U", 10))
	assert.Equal(t, "R U R'...", truncate("R U R' U' F2 D", 9))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m5.0s", formatDuration(125*time.Second))
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestReplay(t *testing.T) *replayModel {
	t.Helper()
	start := gocube.NewCube()
	start.Apply(gocube.U, gocube.R)
	moves, err := gocube.ParseMoves("R' U'")
	require.NoError(t, err)
	return newReplayModel(start, moves, 1, true)
}

func TestReplayStepsToSolved(t *testing.T) {
	m := newTestReplay(t)
	assert.Nil(t, m.Init(), "step mode waits for a key")

	m.Update(key("n"))
	assert.Equal(t, 1, m.index)
	assert.Equal(t, gocube.PhaseSubgroup, m.tracker.HighestPhase())

	m.Update(key(" "))
	assert.True(t, m.tracker.IsSolved())
	assert.Equal(t, []string{"subgroup after 1", "solved after 2"}, m.reached)

	// Past the end nothing changes.
	m.Update(key("n"))
	assert.Equal(t, 2, m.index)
	assert.Contains(t, m.View(), "SOLVED!")
}

func TestReplayBackAndReset(t *testing.T) {
	m := newTestReplay(t)
	m.Update(key("n"))
	m.Update(key("n"))

	m.Update(key("b"))
	assert.Equal(t, 1, m.index)
	assert.False(t, m.tracker.IsSolved())

	m.Update(key("r"))
	assert.Equal(t, 0, m.index)
	assert.Empty(t, m.reached)
	assert.Equal(t, gocube.PhaseScrambled, m.tracker.CurrentPhase())

	// Back at the start is a no-op.
	m.Update(key("b"))
	assert.Equal(t, 0, m.index)
}

func TestReplayAutoplay(t *testing.T) {
	m := newTestReplay(t)
	_, cmd := m.Update(key("p"))
	require.NotNil(t, cmd, "unpausing schedules a tick")
	assert.False(t, m.paused)

	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.Equal(t, 1, m.index)
	assert.NotNil(t, cmd)

	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.Equal(t, 2, m.index)
	assert.Nil(t, cmd, "no tick after the last move")
}

func TestReplaySpeedBounds(t *testing.T) {
	m := newTestReplay(t)
	for i := 0; i < 10; i++ {
		m.Update(key("+"))
	}
	assert.Equal(t, 16.0, m.speed)
	for i := 0; i < 10; i++ {
		m.Update(key("-"))
	}
	assert.Equal(t, 0.25, m.speed)
}

func TestReplayQuit(t *testing.T) {
	m := newTestReplay(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Replay ended.\n", m.View())
}

func TestSolveCommandSavesHistory(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "history.db")

	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", dbFile,
		"solve", "R U R' U'",
	})
	require.NoError(t, rootCmd.Execute())
	// Logging is reconfigured by setup.
	zerolog.SetGlobalLevel(zerolog.Disabled)

	db, err := storage.Open(dbFile)
	require.NoError(t, err)
	defer db.Close()

	s, err := storage.NewSolveRepository(db).GetLast()
	require.NoError(t, err)
	require.NotNil(t, s.Scramble)
	assert.Equal(t, "R U R' U'", *s.Scramble)

	c, err := gocube.FromFacelets(s.Facelets)
	require.NoError(t, err)
	require.NoError(t, c.ApplyNotation(s.Solution))
	assert.True(t, c.IsSolved())
}

func TestSolveInputNeedsOneSource(t *testing.T) {
	solveFacelets, solveRandom = solvedFacelets, true
	defer func() { solveFacelets, solveRandom = "", false }()

	_, _, err := solveInput(nil)
	assert.Error(t, err)
}
