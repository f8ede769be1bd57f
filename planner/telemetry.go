package planner

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// instruments holds the metric instruments, created once in New.
type instruments struct {
	generated  metric.Int64Counter
	minesHist  metric.Int64Histogram
	searches   metric.Int64Counter
	expanded   metric.Int64Counter
	scoreHist  metric.Float64Histogram
	solveMilli metric.Float64Histogram
}

func newInstruments(m metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)
	if in.generated, err = m.Int64Counter("planner.generate.count",
		metric.WithDescription("Maps generated"),
		metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("create generate counter: %w", err)
	}
	if in.minesHist, err = m.Int64Histogram("planner.generate.mines",
		metric.WithDescription("Mines placed per map"),
		metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("create mines histogram: %w", err)
	}
	if in.searches, err = m.Int64Counter("planner.solve.searches",
		metric.WithDescription("Corridor searches run"),
		metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("create searches counter: %w", err)
	}
	if in.expanded, err = m.Int64Counter("planner.solve.expanded",
		metric.WithDescription("Search states expanded"),
		metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("create expanded counter: %w", err)
	}
	if in.scoreHist, err = m.Float64Histogram("planner.solve.score",
		metric.WithDescription("Best score per tolerance; 0 when infeasible"),
		metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("create score histogram: %w", err)
	}
	if in.solveMilli, err = m.Float64Histogram("planner.solve.duration",
		metric.WithDescription("Solve duration in milliseconds"),
		metric.WithUnit("ms")); err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}
	return &in, nil
}
