package solver

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveDuration measures how long each search took.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gocube",
		Subsystem: "solver",
		Name:      "solve_duration_seconds",
		Help:      "Time spent searching for a solution",
		Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	// solvesTotal counts searches by outcome.
	// Labels: result (found, not_found, cancelled)
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocube",
		Subsystem: "solver",
		Name:      "solves_total",
		Help:      "Total searches by result",
	}, []string{"result"})

	// nodesTotal counts expanded search nodes.
	// Labels: phase (1, 2)
	nodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocube",
		Subsystem: "solver",
		Name:      "nodes_total",
		Help:      "Total search nodes expanded per phase",
	}, []string{"phase"})
)

func observe(res Result, err error) {
	solveDuration.Observe(res.Took.Seconds())
	nodesTotal.WithLabelValues("1").Add(float64(res.Nodes[0]))
	nodesTotal.WithLabelValues("2").Add(float64(res.Nodes[1]))

	switch {
	case err == nil:
		solvesTotal.WithLabelValues("found").Inc()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		solvesTotal.WithLabelValues("cancelled").Inc()
	default:
		solvesTotal.WithLabelValues("not_found").Inc()
	}
}
