// Package config loads planner settings from YAML and builds the zap logger
// used by the command-line front end.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/optimizer"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Ranges accepted by Validate.
const (
	MaxMines    = 6000
	MaxWidthCap = 32
)

// Config is the root of a planner YAML file.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Solve      SolveConfig      `yaml:"solve"`
	Log        LogConfig        `yaml:"log"`
}

// GenerationConfig mirrors mapgen.Config plus the RNG seed.
type GenerationConfig struct {
	Trees      int     `yaml:"trees"`
	Mines      int     `yaml:"mines"`
	HiddenRate float64 `yaml:"hidden_rate"`
	SafeBuffer int     `yaml:"safe_buffer"`
	// Seed 0 means "seed from the clock".
	Seed int64 `yaml:"seed,omitempty"`
}

// SolveConfig mirrors the optimizer options.
type SolveConfig struct {
	MinWidth      int  `yaml:"min_width"`
	MaxWidth      int  `yaml:"max_width"`
	Tolerances    int  `yaml:"tolerances"`
	MaxExpansions int  `yaml:"max_expansions,omitempty"`
	Sequential    bool `yaml:"sequential,omitempty"`
}

// LogConfig selects the logger flavour and level.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development,omitempty"`
}

// Default returns the stock planner settings.
func Default() *Config {
	gen := mapgen.DefaultConfig()
	return &Config{
		Generation: GenerationConfig{
			Trees:      gen.Trees,
			Mines:      gen.Mines,
			HiddenRate: gen.HiddenRate,
			SafeBuffer: gen.SafeBuffer,
		},
		Solve: SolveConfig{
			MinWidth:   optimizer.DefaultMinWidth,
			MaxWidth:   optimizer.DefaultMaxWidth,
			Tolerances: optimizer.DefaultTolerances,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path and overlays it on Default, so omitted keys keep their
// default values. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate range-checks every field.
func (c *Config) Validate() error {
	g, s := c.Generation, c.Solve
	switch {
	case g.Trees < 0:
		return fmt.Errorf("%w: generation.trees=%d", ErrInvalidConfig, g.Trees)
	case g.Mines < 0 || g.Mines > MaxMines:
		return fmt.Errorf("%w: generation.mines=%d not in [0,%d]", ErrInvalidConfig, g.Mines, MaxMines)
	case g.HiddenRate < 0 || g.HiddenRate > 1:
		return fmt.Errorf("%w: generation.hidden_rate=%v not in [0,1]", ErrInvalidConfig, g.HiddenRate)
	case g.SafeBuffer < 0:
		return fmt.Errorf("%w: generation.safe_buffer=%d", ErrInvalidConfig, g.SafeBuffer)
	case s.MinWidth < 0 || s.MaxWidth < s.MinWidth || s.MaxWidth > MaxWidthCap:
		return fmt.Errorf("%w: solve width range [%d,%d]", ErrInvalidConfig, s.MinWidth, s.MaxWidth)
	case s.Tolerances < 1:
		return fmt.Errorf("%w: solve.tolerances=%d", ErrInvalidConfig, s.Tolerances)
	case s.MaxExpansions < 0:
		return fmt.Errorf("%w: solve.max_expansions=%d", ErrInvalidConfig, s.MaxExpansions)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// MapConfig converts the generation section.
func (g GenerationConfig) MapConfig() mapgen.Config {
	return mapgen.Config{
		Trees:      g.Trees,
		Mines:      g.Mines,
		HiddenRate: g.HiddenRate,
		SafeBuffer: g.SafeBuffer,
	}
}

// Options converts the solve section.
func (s SolveConfig) Options() []optimizer.Option {
	opts := []optimizer.Option{
		optimizer.WithWidths(s.MinWidth, s.MaxWidth),
		optimizer.WithTolerances(s.Tolerances),
		optimizer.WithMaxExpansions(s.MaxExpansions),
	}
	if s.Sequential {
		opts = append(opts, optimizer.WithSequential())
	}
	return opts
}

// NewLogger builds a zap logger at the configured level.
func NewLogger(lc LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if lc.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
