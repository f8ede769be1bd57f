package planner

import (
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/optimizer"
)

// Sentinel errors.
var (
	// ErrNilBundle indicates Solve was called without a bundle.
	ErrNilBundle = errors.New("planner: bundle is nil")
	// ErrUnknownTolerance indicates a tolerance outside the solved range.
	ErrUnknownTolerance = errors.New("planner: tolerance was not solved")
)

// instrumentationName names the tracer and meter.
const instrumentationName = "github.com/PennIARC/GridTesting/planner"

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTracer sets the tracer used for Generate and Solve spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Planner) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithMeter sets the meter used for planner metrics.
func WithMeter(m metric.Meter) Option {
	return func(p *Planner) {
		if m != nil {
			p.meter = m
		}
	}
}

// WithSeed makes every Generate call draw from one deterministic stream.
func WithSeed(seed int64) Option {
	return func(p *Planner) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDimensions overrides the generated map size.
func WithDimensions(width, height int) Option {
	return func(p *Planner) {
		p.genOpts = append(p.genOpts, mapgen.WithDimensions(width, height))
	}
}

// WithSolveOptions appends optimizer options applied by every Solve.
func WithSolveOptions(opts ...optimizer.Option) Option {
	return func(p *Planner) {
		p.solveOpts = append(p.solveOpts, opts...)
	}
}

func defaultPlanner() *Planner {
	return &Planner{
		logger: zap.NewNop(),
		tracer: tracenoop.NewTracerProvider().Tracer(instrumentationName),
		meter:  metricnoop.NewMeterProvider().Meter(instrumentationName),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
