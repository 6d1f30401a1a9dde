package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
	"github.com/SeamusWaldron/gocube_solver/internal/tables"
)

var (
	solveFacelets  string
	solveRandom    bool
	solveMaxDepth  int
	solveTimeout   time.Duration
	solveNoHistory bool
	solveNotes     string
	solveShow      bool
	solveDescribe  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [moves]",
	Short: "Solve a cube",
	Long: `Find a solution of at most 22 moves (or --max-depth) for a cube.

The cube is given one of three ways:
  gocube solve "R U R' U'"          # the state reached by these moves
  gocube solve --facelets UUU...BBB # a 54-symbol facelet string
  gocube solve --random             # a uniformly random state

Facelet strings list the U, R, F, D, L and B faces in that order, each
row by row. Any whole-cube orientation is accepted; the solution is named
for the orientation given. Solves are saved to the history database
unless --no-history is set or history is disabled in the config.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFacelets, "facelets", "f", "", "Facelet string of the cube to solve")
	solveCmd.Flags().BoolVarP(&solveRandom, "random", "r", false, "Solve a random cube")
	solveCmd.Flags().IntVarP(&solveMaxDepth, "max-depth", "d", 0, "Maximum solution length (default from config)")
	solveCmd.Flags().DurationVarP(&solveTimeout, "timeout", "t", 0, "Give up after this long (default from config)")
	solveCmd.Flags().BoolVar(&solveNoHistory, "no-history", false, "Do not save this solve")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes for this solve")
	solveCmd.Flags().BoolVarP(&solveShow, "show", "s", false, "Draw the cube before solving")
	solveCmd.Flags().BoolVar(&solveDescribe, "describe", false, "Spell out each move of the solution")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, scramble, err := solveInput(args)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("cube cannot be solved: %w", err)
	}

	if solveShow {
		fmt.Println(renderNet(c.Facelets(), cfg.Color))
	}

	maxDepth := cfg.MaxDepth
	if solveMaxDepth > 0 {
		maxDepth = solveMaxDepth
	}
	timeout := cfg.Timeout
	if solveTimeout > 0 {
		timeout = solveTimeout
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := solver.New(tables.Default()).Search(ctx, c, maxDepth)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		return fmt.Errorf("no solution of %d moves or fewer", maxDepth)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("gave up after %s", formatDuration(timeout))
	case err != nil:
		return err
	}

	printResult(res)
	if solveDescribe && res.Length > 0 {
		moves, err := notation.ParseSequence(res.Moves)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(notation.DescribeSequence(moves))
	}

	if !cfg.History || solveNoHistory {
		return nil
	}

	s := &storage.Solve{
		Facelets:    c.Facelets(),
		Scramble:    scramble,
		Solution:    res.Moves,
		Phase1Moves: res.Phase1Depth,
		MaxDepth:    maxDepth,
		DurationMs:  res.Took.Milliseconds(),
		NodesPhase1: res.Nodes[0],
		NodesPhase2: res.Nodes[1],
	}
	if solveNotes != "" {
		s.Notes = &solveNotes
	}
	id, err := saveSolve(s)
	if err != nil {
		// The solution was already printed.
		log.Warn().Err(err).Msg("history-save-failed")
		return nil
	}
	fmt.Println(statusStyle.Render("Saved as " + storage.Short(id)))
	return nil
}

// solveInput builds the cube to solve from the command line. The returned
// scramble is the move string when the cube came from one.
func solveInput(args []string) (*cube.Cube, *string, error) {
	given := 0
	if solveFacelets != "" {
		given++
	}
	if solveRandom {
		given++
	}
	if len(args) > 0 {
		given++
	}
	if given != 1 {
		return nil, nil, errors.New("give exactly one of: moves, --facelets, --random")
	}

	switch {
	case solveFacelets != "":
		c, err := cube.FromFacelets(solveFacelets)
		return c, nil, err
	case solveRandom:
		return cube.Random(), nil, nil
	}

	scramble := strings.Join(args, " ")
	c := cube.New()
	if err := c.Move(scramble); err != nil {
		return nil, nil, err
	}
	return c, &scramble, nil
}

func printResult(res solver.Result) {
	if res.Length == 0 {
		fmt.Println(phaseStyle.Render("Already solved"))
		return
	}

	fmt.Printf("%s %s\n", titleStyle.Render("Solution:"), moveStyle.Render(res.Moves))
	fmt.Printf("Moves:    %d (phase 1: %d, phase 2: %d)\n",
		res.Length, res.Phase1Depth, res.Length-res.Phase1Depth)
	fmt.Printf("Time:     %s\n", formatDuration(res.Took))
	fmt.Println(statusStyle.Render(fmt.Sprintf("Nodes:    %d + %d", res.Nodes[0], res.Nodes[1])))
	if res.Rotation != "" {
		fmt.Println(statusStyle.Render("Searched after rotating with " + res.Rotation))
	}
}

func saveSolve(s *storage.Solve) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	return storage.NewSolveRepository(db).Create(s)
}
