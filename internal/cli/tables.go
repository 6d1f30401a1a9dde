package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/tables"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build the solver tables and report their sizes",
	Long: `Build every move and pruning table the solver uses, as the first solve
in a process does, and print how long it took and how large they are.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	t, err := tables.Build(ctx)
	if err != nil {
		return err
	}
	took := time.Since(start)

	fmt.Println(titleStyle.Render("Move tables"))
	for _, mt := range []struct {
		name  string
		table tables.MoveTable
	}{
		{"twist", t.Twist},
		{"flip", t.Flip},
		{"FRtoBR", t.FRtoBR},
		{"URFtoDLF", t.URFtoDLF},
		{"URtoDF", t.URtoDF},
		{"URtoUL", t.URtoUL},
		{"UBtoDF", t.UBtoDF},
	} {
		fmt.Printf("  %-10s %8d entries\n", mt.name, mt.table.Size())
	}

	fmt.Println(titleStyle.Render("Pruning tables"))
	for _, pt := range []struct {
		name  string
		table tables.Pruning
	}{
		{"slice-twist", t.SliceTwist},
		{"slice-flip", t.SliceFlip},
		{"URFtoDLF-parity", t.SliceURFtoDLFPar},
		{"URtoDF-parity", t.SliceURtoDFPar},
	} {
		fmt.Printf("  %-16s %8d KiB\n", pt.name, pt.table.Bytes()/1024)
	}

	fmt.Println()
	fmt.Printf("Built in %s\n", formatDuration(took))
	return nil
}
