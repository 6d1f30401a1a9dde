package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/analysis"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
	"github.com/SeamusWaldron/gocube_solver/pkg/types"
)

var (
	listLimit int
	showLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved solves",
	Long:  `Commands for listing, inspecting and deleting solves saved by "gocube solve".`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display a saved solve: the cube, its solution split into the two
phases, and search statistics. An ID prefix is enough.

Use --last to show the most recent solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Find patterns across saved solutions",
	Long: `Count face and turn usage across saved solutions and list the move
sequences that repeat most often.`,
	Args: cobra.NoArgs,
	RunE: runHistoryAnalyze,
}

var (
	analyzeLimit int
	analyzeMinN  int
	analyzeMaxN  int
	analyzeTopK  int
)

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize saved solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Number of solves to list")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyStatsCmd)

	historyCmd.AddCommand(historyAnalyzeCmd)
	historyAnalyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "n", 100, "Number of recent solves to analyze")
	historyAnalyzeCmd.Flags().IntVar(&analyzeMinN, "min", 3, "Shortest sequence length to report")
	historyAnalyzeCmd.Flags().IntVar(&analyzeMaxN, "max", 6, "Longest sequence length to report")
	historyAnalyzeCmd.Flags().IntVar(&analyzeTopK, "top", 5, "Sequences to report per length")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves saved yet. Try: gocube solve --random")
		return nil
	}

	fmt.Printf("%-10s %-20s %6s %10s  %s\n", "ID", "Date", "Moves", "Time", "Solution")
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range solves {
		fmt.Printf("%-10s %-20s %6d %10s  %s\n",
			storage.Short(s.SolveID),
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.MoveCount,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
			truncate(s.Solution, 40),
		)
	}
	return nil
}

// getSolve resolves the solve named by args, or the latest one.
func getSolve(repo *storage.SolveRepository, args []string, last bool) (*storage.Solve, error) {
	switch {
	case len(args) > 0:
		return repo.Get(args[0])
	case last:
		return repo.GetLast()
	}
	return nil, errors.New("specify a solve ID or use --last")
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := getSolve(storage.NewSolveRepository(db), args, showLast)
	if err != nil {
		return err
	}
	moves, err := storage.NewMoveRepository(db).GetBySolve(s.SolveID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solve " + s.SolveID))
	fmt.Printf("Date:     %s\n", s.CreatedAt.Local().Format(time.RFC1123))
	if s.Scramble != nil {
		fmt.Printf("Scramble: %s\n", *s.Scramble)
	}
	fmt.Printf("Facelets: %s\n", s.Facelets)
	fmt.Println()
	fmt.Println(renderNet(s.Facelets, cfg.Color))

	var phase1, phase2 []string
	for _, m := range moves {
		if m.Phase == 1 {
			phase1 = append(phase1, m.Notation)
		} else {
			phase2 = append(phase2, m.Notation)
		}
	}
	fmt.Printf("Phase 1:  %s %s\n", moveStyle.Render(strings.Join(phase1, " ")),
		statusStyle.Render(fmt.Sprintf("(%d)", len(phase1))))
	fmt.Printf("Phase 2:  %s %s\n", moveStyle.Render(strings.Join(phase2, " ")),
		statusStyle.Render(fmt.Sprintf("(%d)", len(phase2))))
	fmt.Printf("Moves:    %d (max depth %d)\n", s.MoveCount, s.MaxDepth)
	fmt.Printf("Time:     %s\n", formatDuration(time.Duration(s.DurationMs)*time.Millisecond))
	fmt.Printf("Nodes:    %d + %d\n", s.NodesPhase1, s.NodesPhase2)
	if s.Notes != nil {
		fmt.Printf("Notes:    %s\n", *s.Notes)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if err := repo.Delete(s.SolveID); err != nil {
		return err
	}
	fmt.Printf("Deleted solve %s\n", storage.Short(s.SolveID))
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := storage.NewSolveRepository(db).Stats()
	if err != nil {
		return err
	}
	if st.Count == 0 {
		fmt.Println("No solves saved yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Solve statistics"))
	fmt.Printf("Solves:       %d\n", st.Count)
	fmt.Printf("Moves:        %.1f avg, %d best, %d worst\n", st.AvgMoves, st.MinMoves, st.MaxMoves)
	fmt.Printf("Search time:  %s avg\n", formatDuration(st.AvgDuration))
	return nil
}

func runHistoryAnalyze(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(analyzeLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}
	if len(solves) == 0 {
		fmt.Println("No solves saved yet.")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	solutions := make([]analysis.Solution, 0, len(solves))
	for _, s := range solves {
		records, err := moveRepo.GetBySolve(s.SolveID)
		if err != nil {
			return err
		}
		solutions = append(solutions, analysis.Solution{
			SolveID: s.SolveID,
			Moves:   storage.ToMoves(records),
		})
	}

	profile := analysis.AnalyzeMovementProfile(solutions)
	fmt.Println(titleStyle.Render(fmt.Sprintf("Movement profile (%d solves, %d moves)", len(solutions), profile.Moves)))
	for _, face := range types.Faces {
		count := profile.FaceCounts[face]
		pct := 0.0
		if profile.Moves > 0 {
			pct = float64(count) / float64(profile.Moves) * 100
		}
		fmt.Printf("  %s: %4d (%5.1f%%) %s\n", face, count, pct, moveStyle.Render(strings.Repeat("#", int(pct/2))))
	}
	fmt.Printf("  Half turns: %.1f%%\n", profile.HalfTurnRatio()*100)
	fmt.Print("  Lengths:   ")
	for _, n := range profile.SortedLengths() {
		fmt.Printf(" %d×%d", n, profile.Lengths[n])
	}
	fmt.Println()

	report := analysis.MineNGrams(solutions, analyzeMinN, analyzeMaxN, analyzeTopK)
	fmt.Println()
	fmt.Println(titleStyle.Render("Repeated sequences"))
	if len(report.TopNGrams) == 0 {
		fmt.Println(statusStyle.Render("  none"))
		return nil
	}
	for n := analyzeMinN; n <= analyzeMaxN; n++ {
		for _, ng := range report.TopNGrams[n] {
			fmt.Printf("  %-24s %s\n", strings.Join(ng.Sequence, " "),
				statusStyle.Render(fmt.Sprintf("x%d", ng.Count)))
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
