package tables

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/gocube_solver/internal/cube"
)

var buildSeconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "gocube",
	Subsystem: "tables",
	Name:      "build_seconds",
	Help:      "Time taken to build each solver table",
}, []string{"table"})

// Tables holds every table the solver reads. All fields are read-only once
// Build returns.
type Tables struct {
	Twist    MoveTable
	Flip     MoveTable
	FRtoBR   MoveTable
	URFtoDLF MoveTable
	URtoDF   MoveTable
	URtoUL   MoveTable
	UBtoDF   MoveTable
	Parity   ParityTable
	Merge    *MergeTable

	SliceTwist       Pruning
	SliceFlip        Pruning
	SliceURFtoDLFPar Pruning
	SliceURtoDFPar   Pruning
}

// Build creates all tables. Independent tables are built concurrently:
// move tables first, then the pruning tables that walk them.
func Build(ctx context.Context) (*Tables, error) {
	start := time.Now()
	t := &Tables{Parity: buildParity()}

	g, gctx := errgroup.WithContext(ctx)
	moveTables := []struct {
		dst   *MoveTable
		coord cube.Coordinate
	}{
		{&t.Twist, cube.TwistCoord},
		{&t.Flip, cube.FlipCoord},
		{&t.FRtoBR, cube.FRtoBRCoord},
		{&t.URFtoDLF, cube.URFtoDLFCoord},
		{&t.URtoDF, cube.URtoDFCoord},
		{&t.URtoUL, cube.URtoULCoord},
		{&t.UBtoDF, cube.UBtoDFCoord},
	}
	for _, mt := range moveTables {
		mt := mt
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			timed(mt.coord.Name, mt.coord.Size, func() {
				*mt.dst = buildMoveTable(mt.coord)
			})
			return nil
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		timed("mergeURtoDF", NMerge*NMerge, func() {
			t.Merge = buildMergeURtoDF()
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, gctx = errgroup.WithContext(ctx)
	pruning := []struct {
		name  string
		size  int
		dst   *Pruning
		build func(context.Context) (Pruning, error)
	}{
		{"sliceTwist", NSliceTwist, &t.SliceTwist, func(ctx context.Context) (Pruning, error) {
			return buildSliceTwist(ctx, t.FRtoBR, t.Twist)
		}},
		{"sliceFlip", NSliceFlip, &t.SliceFlip, func(ctx context.Context) (Pruning, error) {
			return buildSliceFlip(ctx, t.FRtoBR, t.Flip)
		}},
		{"sliceURFtoDLFParity", NURFtoDLFSlice, &t.SliceURFtoDLFPar, func(ctx context.Context) (Pruning, error) {
			return buildPhase2(ctx, NURFtoDLFSlice, t.URFtoDLF, t.FRtoBR, &t.Parity)
		}},
		{"sliceURtoDFParity", NURtoDFSlice, &t.SliceURtoDFPar, func(ctx context.Context) (Pruning, error) {
			return buildPhase2(ctx, NURtoDFSlice, t.URtoDF, t.FRtoBR, &t.Parity)
		}},
	}
	for _, pt := range pruning {
		pt := pt
		g.Go(func() error {
			var err error
			timed(pt.name, pt.size, func() {
				*pt.dst, err = pt.build(gctx)
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Dur("took", time.Since(start)).Msg("tables-ready")
	return t, nil
}

func timed(name string, size int, build func()) {
	start := time.Now()
	build()
	took := time.Since(start)
	buildSeconds.WithLabelValues(name).Set(took.Seconds())
	log.Debug().Str("table", name).Int("size", size).Dur("took", took).Msg("built-table")
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables, building them on first use.
// Later calls wait for the first build and return the same tables.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Build(context.Background())
		if err != nil {
			// Build only fails when its context is cancelled.
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}
