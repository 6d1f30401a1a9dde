package gocube

import (
	"context"

	"github.com/SeamusWaldron/gocube_solver/internal/solver"
	"github.com/SeamusWaldron/gocube_solver/internal/tables"
)

// Option configures a Solve call.
type Option func(*config)

type config struct {
	ctx      context.Context
	maxDepth int
	tables   *tables.Tables
}

func defaultConfig() *config {
	return &config{
		ctx:      context.Background(),
		maxDepth: solver.DefaultMaxDepth,
	}
}

// WithMaxDepth sets the largest number of moves a solution may have.
// The default is 22. Smaller budgets make the search slower and may
// end in ErrNoSolution.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithContext lets the caller cancel a long search. Cancellation is
// checked every few thousand search nodes.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithTables makes Solve use t instead of the process-wide tables.
func WithTables(t *tables.Tables) Option {
	return func(c *config) {
		c.tables = t
	}
}
