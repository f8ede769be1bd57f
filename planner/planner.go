package planner

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/optimizer"
	"github.com/PennIARC/GridTesting/render"
	"github.com/PennIARC/GridTesting/scenario"
)

// Planner generates and solves corridor scenarios.
type Planner struct {
	logger *zap.Logger
	tracer trace.Tracer
	meter  metric.Meter
	inst   *instruments

	mu  sync.Mutex
	rng *rand.Rand

	genOpts   []mapgen.Option
	solveOpts []optimizer.Option
}

// New returns a Planner; it fails only if a metric instrument cannot be created.
func New(opts ...Option) (*Planner, error) {
	p := defaultPlanner()
	for _, opt := range opts {
		opt(p)
	}
	inst, err := newInstruments(p.meter)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	p.inst = inst
	return p, nil
}

// Generate draws a fresh map for cfg and builds its distance fields.
func (p *Planner) Generate(ctx context.Context, cfg mapgen.Config) (*scenario.Bundle, error) {
	ctx, span := p.tracer.Start(ctx, "planner.Generate")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	res, err := mapgen.Generate(cfg, append([]mapgen.Option{mapgen.WithRand(p.rng)}, p.genOpts...)...)
	p.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	b, err := scenario.FromGenerated(res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "distance fields failed")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	st := res.Stats
	span.SetAttributes(
		attribute.String("map_id", b.ID.String()),
		attribute.Int("mines.visible", len(b.Visible)),
		attribute.Int("mines.hidden", len(b.Hidden)),
		attribute.Int("trees", st.TreesPlaced),
		attribute.Bool("degraded", st.Degraded()),
	)
	p.inst.generated.Add(ctx, 1)
	p.inst.minesHist.Record(ctx, int64(st.MinesPlaced))

	log := p.logger.With(zap.String("map_id", b.ID.String()))
	log.Debug("map generated",
		zap.Int("trees", st.TreesPlaced),
		zap.Int("visible", len(b.Visible)),
		zap.Int("hidden", len(b.Hidden)),
		zap.Int("attempts", st.Attempts),
	)
	if st.Degraded() {
		log.Warn("mine placement degraded",
			zap.Int("target", st.MinesTarget),
			zap.Int("placed", st.MinesPlaced),
			zap.Int("attempts", st.Attempts),
		)
	}
	return b, nil
}

// Solve runs the optimizer over b at every configured tolerance.
func (p *Planner) Solve(ctx context.Context, b *scenario.Bundle) (*Solution, error) {
	if b == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilBundle)
	}
	ctx, span := p.tracer.Start(ctx, "planner.Solve",
		trace.WithAttributes(attribute.String("map_id", b.ID.String())))
	defer span.End()

	started := time.Now()
	results, err := optimizer.Optimize(ctx, b, p.solveOpts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		return nil, fmt.Errorf("Solve: %w", err)
	}
	elapsed := time.Since(started)

	log := p.logger.With(zap.String("map_id", b.ID.String()))
	for _, r := range results {
		attrs := metric.WithAttributes(attribute.Int("tolerance", r.Tolerance))
		p.inst.searches.Add(ctx, int64(r.Searches), attrs)
		p.inst.expanded.Add(ctx, int64(r.Expanded), attrs)
		p.inst.scoreHist.Record(ctx, r.Score, attrs)

		if !r.Feasible {
			log.Info("no corridor", zap.Int("tolerance", r.Tolerance), zap.Int("searches", r.Searches))
			continue
		}
		log.Info("corridor found",
			zap.Int("tolerance", r.Tolerance),
			zap.Int("width", r.Width),
			zap.Int("length", r.PathLength()),
			zap.Int("missed", len(r.Violated)),
			zap.Float64("score", r.Score),
			zap.Int("expanded", r.Expanded),
		)
	}
	p.inst.solveMilli.Record(ctx, float64(elapsed.Microseconds())/1000)
	span.SetAttributes(attribute.Int("tolerances", len(results)))
	span.SetStatus(codes.Ok, "")

	return &Solution{Bundle: b, Results: results}, nil
}

// Run generates a map for cfg and solves it.
func (p *Planner) Run(ctx context.Context, cfg mapgen.Config) (*Solution, error) {
	b, err := p.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return p.Solve(ctx, b)
}

// Solution is one solved map.
type Solution struct {
	Bundle *scenario.Bundle
	// Results are indexed by tolerance.
	Results []optimizer.Result
}

// Result returns the optimizer result for tolerance.
func (s *Solution) Result(tolerance int) (optimizer.Result, error) {
	if tolerance < 0 || tolerance >= len(s.Results) {
		return optimizer.Result{}, fmt.Errorf("Result: tolerance %d of %d: %w",
			tolerance, len(s.Results), ErrUnknownTolerance)
	}
	return s.Results[tolerance], nil
}

// RenderData classifies every cell for tolerance.
func (s *Solution) RenderData(tolerance int) (render.Data, error) {
	r, err := s.Result(tolerance)
	if err != nil {
		return render.Data{}, err
	}
	return render.Build(s.Bundle, r), nil
}

// RenderAll classifies every cell for every tolerance.
func (s *Solution) RenderAll() []render.Data {
	return render.BuildAll(s.Bundle, s.Results)
}
