package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id]",
	Short: "Step through a saved solution",
	Long: `Replay a saved solve move by move, drawing the cube after each turn
and the stage of the two-phase method it has reached.

With no solve ID the most recent solve is replayed.

Usage:
  gocube replay                 # Replay the last solve
  gocube replay 3f2a9c1b        # Replay a specific solve
  gocube replay --speed 2.0     # Autoplay at 2 moves per second
  gocube replay --step          # Step through moves manually`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Moves per second when autoplaying")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	s, err := getSolve(storage.NewSolveRepository(db), args, len(args) == 0)
	db.Close()
	if errors.Is(err, storage.ErrSolveNotFound) && len(args) == 0 {
		fmt.Println("No solves saved yet. Try: gocube solve --random")
		return nil
	}
	if err != nil {
		return err
	}

	start, err := gocube.FromFacelets(s.Facelets)
	if err != nil {
		return fmt.Errorf("saved cube is corrupt: %w", err)
	}
	moves, err := gocube.ParseMoves(s.Solution)
	if err != nil {
		return fmt.Errorf("saved solution is corrupt: %w", err)
	}

	model := newReplayModel(start, moves, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	start    *gocube.Cube
	moves    []gocube.Move
	index    int // Moves applied so far
	speed    float64
	stepMode bool
	paused   bool
	tracker  *gocube.Tracker
	reached  []string // Phases reached, in order
	quitting bool
}

func newReplayModel(start *gocube.Cube, moves []gocube.Move, speed float64, stepMode bool) *replayModel {
	m := &replayModel{
		start:    start,
		moves:    moves,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
	m.reset()
	return m
}

type replayTickMsg time.Time

func (m *replayModel) reset() {
	m.index = 0
	m.reached = nil
	m.tracker = gocube.NewTracker(m.start)
	m.tracker.SetPhaseCallback(func(_ gocube.Phase, key string) {
		m.reached = append(m.reached, fmt.Sprintf("%s after %d", key, m.index))
	})
}

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil // Wait for user input
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.moves) || m.speed <= 0 {
		return nil
	}
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

// step applies the next move. It reports false at the end.
func (m *replayModel) step() bool {
	if m.index >= len(m.moves) {
		return false
	}
	m.index++
	m.tracker.ApplyMove(m.moves[m.index-1])
	return true
}

// back replays from the start up to one move before the current one.
func (m *replayModel) back() {
	target := m.index - 1
	if target < 0 {
		return
	}
	m.reset()
	for m.index < target {
		m.step()
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			if m.stepMode || m.paused {
				m.step()
			} else {
				m.paused = true
			}

		case "b", "left":
			m.back()

		case "p":
			m.paused = !m.paused
			if !m.paused {
				m.stepMode = false
				return m, m.scheduleNext()
			}

		case "r":
			m.reset()
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.paused && m.step() {
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("GoCube Solution Replay"))
	b.WriteString("\n\n")

	// Replay status
	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2g moves/s)\n\n", m.speed))

	b.WriteString(renderNet(m.tracker.Cube().Facelets(), cfg.Color))
	b.WriteString("\n")

	// Phase detection (monotonic - never goes backwards)
	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render(m.tracker.HighestPhase().DisplayName())))
		p := m.tracker.Progress()
		b.WriteString(statusStyle.Render(fmt.Sprintf("Twist %d, flip %d, slice %d", p.Twist, p.Flip, p.Slice)))
		b.WriteString("\n")
	}
	if len(m.reached) > 0 {
		b.WriteString(statusStyle.Render("Reached: " + strings.Join(m.reached, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	notations := make([]string, len(m.moves))
	for i, mv := range m.moves {
		notations[i] = mv.Notation()
	}
	b.WriteString("Moves: ")
	b.WriteString(renderMoves(notations, m.index-1))
	b.WriteString("\n")
	if m.index > 0 {
		b.WriteString(statusStyle.Render("Last:  " + notation.Describe(m.moves[m.index-1])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Help
	help := "SPACE/n=next  b=back  p=play/pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next  b=back  p=autoplay  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
