package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

var (
	scrambleMoves  bool
	scrambleLength int
	scrambleCount  int
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate scrambles",
	Long: `Generate scrambles.

By default each scramble takes a solved cube to a uniformly random state
(the inverse of a solution for a random cube). With --moves the scramble is
a sequence of random face turns, no two in a row on the same axis.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().BoolVarP(&scrambleMoves, "moves", "m", false, "Random face turns instead of a random state")
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 0, "Number of turns with --moves (default from config)")
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "Number of scrambles")
	scrambleCmd.Flags().BoolVarP(&scrambleShow, "show", "s", false, "Draw the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	length := cfg.ScrambleLength
	if scrambleLength > 0 {
		length = scrambleLength
	}

	for i := 0; i < scrambleCount; i++ {
		var scramble string
		if scrambleMoves {
			scramble = gocube.FormatMoves(gocube.RandomMoveScramble(length))
		} else {
			var err error
			scramble, err = gocube.Scramble(gocube.WithContext(ctx), gocube.WithMaxDepth(cfg.MaxDepth))
			if err != nil {
				return fmt.Errorf("failed to generate scramble: %w", err)
			}
		}

		if scrambleCount > 1 {
			fmt.Printf("%3d. ", i+1)
		}
		fmt.Println(moveStyle.Render(scramble))

		if scrambleShow {
			c := cube.New()
			if err := c.Move(scramble); err != nil {
				return err
			}
			fmt.Println(renderNet(c.Facelets(), cfg.Color))
		}
	}
	return nil
}
