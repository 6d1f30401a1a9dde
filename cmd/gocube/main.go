// gocube - command-line two-phase Rubik's Cube solver.
package main

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cli"
)

func main() {
	cli.Execute()
}
