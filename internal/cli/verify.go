package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <facelets>",
	Short: "Check a facelet string",
	Long: `Check that a 54-symbol facelet string describes a cube that can be
solved by turning faces, and report which two-phase stage it is in.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

var showCmd = &cobra.Command{
	Use:   "show [moves]",
	Short: "Draw the cube after a sequence of moves",
	Long: `Apply moves to a solved cube and draw the result.

Face turns, slice moves (E M S), wide moves (u r f d l b) and whole-cube
rotations (x y z) are accepted, e.g.:
  gocube show "R U R' U'"
  gocube show x R2 M'`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	c, err := cube.FromFacelets(args[0])
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		fmt.Println(renderNet(args[0], cfg.Color))
		return err
	}

	fmt.Println(renderNet(args[0], cfg.Color))
	fmt.Println(phaseStyle.Render("Valid"))
	printCubeState(c)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	c := cube.New()
	if err := c.Move(strings.Join(args, " ")); err != nil {
		return err
	}

	fmt.Println(renderNet(c.Facelets(), cfg.Color))
	fmt.Printf("Facelets: %s\n", c.Facelets())
	printCubeState(c)
	return nil
}

func printCubeState(c *cube.Cube) {
	fmt.Printf("Phase:    %s\n", phaseStyle.Render(c.DetectPhase().DisplayName()))
	p := c.GetProgress()
	fmt.Println(statusStyle.Render(fmt.Sprintf("Twist %d, flip %d, slice %d", p.Twist, p.Flip, p.Slice)))
}
