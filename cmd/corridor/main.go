package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/PennIARC/GridTesting/config"
	"github.com/PennIARC/GridTesting/planner"
	"github.com/PennIARC/GridTesting/render"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Version is the version of the compiled software.
	Version string

	flagconf string
	seed     int64
	out      string
	ascii    bool
)

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf planner.yaml")
	flag.Int64Var(&seed, "seed", 0, "RNG seed; overrides generation.seed when non-zero")
	flag.StringVar(&out, "out", "-", "render data destination, - for stdout")
	flag.BoolVar(&ascii, "ascii", false, "print the map and per-tolerance summaries to stderr")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "corridor:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if flagconf != "" {
		loaded, err := config.Load(flagconf)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Generation.Seed = seed
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("version", Version))

	opts := []planner.Option{
		planner.WithLogger(logger),
		planner.WithSolveOptions(cfg.Solve.Options()...),
	}
	if cfg.Generation.Seed != 0 {
		opts = append(opts, planner.WithSeed(cfg.Generation.Seed))
	}
	p, err := planner.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sol, err := p.Run(ctx, cfg.Generation.MapConfig())
	if err != nil {
		return err
	}
	data := sol.RenderAll()

	if ascii {
		fmt.Fprintln(os.Stderr, sol.Bundle.Grid.String())
		for _, d := range data {
			marker := ""
			if d.OverBudget() {
				marker = "  !"
			}
			fmt.Fprintln(os.Stderr, d.Summary()+marker)
		}
	}

	w := os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := render.WriteJSON(w, data); err != nil {
		return fmt.Errorf("write render data: %w", err)
	}
	logger.Info("render data written", zap.String("out", out), zap.Int("tolerances", len(data)))
	return nil
}
