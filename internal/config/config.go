// SPDX-License-Identifier: MIT

// Package config loads lvroute's TOML configuration: the template graph to
// build, solver limits and bench parameters.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Template kinds.
const (
	KindGrid     = "grid"
	KindRandom   = "random"
	KindPath     = "path"
	KindCycle    = "cycle"
	KindComplete = "complete"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindCafe     = "cafe"
)

// Weight distributions.
const (
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistExponential = "exponential"
)

// MaxIntegerWeight bounds max_weight when integer_weights is set.
const MaxIntegerWeight = 1 << 30

// Config is the root of an lvroute TOML file.
type Config struct {
	Log      Log      `toml:"log"`
	Template Template `toml:"template"`
	Solver   Solver   `toml:"solver"`
	Bench    Bench    `toml:"bench"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"` // debug | info | warn | error
}

// Template selects and parameterizes the template graph.
// Rows/Cols apply to grid; Nodes to every other sized kind.
// MinWeight, MaxWeight and IntegerWeights apply to the uniform distribution,
// Mean/StdDev to normal and Rate to exponential. Normal and exponential
// weights are always rounded to integers.
type Template struct {
	Kind           string  `toml:"kind"`
	Rows           int     `toml:"rows"`
	Cols           int     `toml:"cols"`
	Nodes          int     `toml:"nodes"`
	Probability    float64 `toml:"probability"`
	Directed       bool    `toml:"directed"`
	Seed           int64   `toml:"seed"`
	WeightDist     string  `toml:"weight_dist"`
	MinWeight      float64 `toml:"min_weight"`
	MaxWeight      float64 `toml:"max_weight"`
	IntegerWeights bool    `toml:"integer_weights"`
	Mean           float64 `toml:"mean"`
	StdDev         float64 `toml:"stddev"`
	Rate           float64 `toml:"rate"`
}

// Solver limits; zero means unlimited.
type Solver struct {
	MaxDistance      float64 `toml:"max_distance"`
	InfEdgeThreshold float64 `toml:"inf_edge_threshold"`
}

// Bench parameterizes the reuse benchmark run by the bench command.
type Bench struct {
	Queries    int           `toml:"queries"`
	Workers    int           `toml:"workers"` // 0 = GOMAXPROCS
	NewNodes   int           `toml:"new_nodes"`
	ExtraEdges int           `toml:"extra_edges"`
	Seed       int64         `toml:"seed"`
	Timeout    time.Duration `toml:"timeout"` // 0 = none
}

// Default returns the built-in configuration: a seeded 64×64 grid with
// integral weights in [1,10].
func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Template: Template{
			Kind:           KindGrid,
			Rows:           64,
			Cols:           64,
			Nodes:          1024,
			Probability:    0.01,
			Seed:           1,
			WeightDist:     DistUniform,
			MinWeight:      1,
			MaxWeight:      10,
			IntegerWeights: true,
			Mean:           5,
			StdDev:         2,
			Rate:           0.5,
		},
		Bench: Bench{
			Queries:    1000,
			NewNodes:   1,
			ExtraEdges: 2,
			Seed:       1,
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value domains. Constructor-specific size minimums are
// left to builder and surface when the template is built.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	t := c.Template
	switch t.Kind {
	case KindGrid:
		if t.Rows < 1 || t.Cols < 1 {
			return fmt.Errorf("%w: template rows=%d cols=%d must be ≥ 1", ErrInvalidConfig, t.Rows, t.Cols)
		}
	case KindRandom, KindPath, KindCycle, KindComplete, KindStar, KindWheel:
		if t.Nodes < core.MinNodes {
			return fmt.Errorf("%w: template nodes=%d < %d", ErrInvalidConfig, t.Nodes, core.MinNodes)
		}
	case KindCafe:
	default:
		return fmt.Errorf("%w: unknown template kind %q", ErrInvalidConfig, t.Kind)
	}
	if !(t.Probability >= 0 && t.Probability <= 1) {
		return fmt.Errorf("%w: template probability=%g not in [0,1]", ErrInvalidConfig, t.Probability)
	}
	if err := t.validateWeights(); err != nil {
		return err
	}

	if !(c.Solver.MaxDistance >= 0) || !(c.Solver.InfEdgeThreshold >= 0) {
		return fmt.Errorf("%w: solver limits must be ≥ 0", ErrInvalidConfig)
	}

	b := c.Bench
	if b.Queries < 1 {
		return fmt.Errorf("%w: bench queries=%d < 1", ErrInvalidConfig, b.Queries)
	}
	if b.Workers < 0 || b.NewNodes < 0 || b.ExtraEdges < 0 || b.Timeout < 0 {
		return fmt.Errorf("%w: bench workers, new_nodes, extra_edges and timeout must be ≥ 0", ErrInvalidConfig)
	}

	return nil
}

// validateWeights checks the parameters of the selected distribution.
func (t Template) validateWeights() error {
	switch t.WeightDist {
	case DistUniform:
		if !(t.MinWeight >= 0) || !(t.MaxWeight >= t.MinWeight) || math.IsInf(t.MaxWeight, 1) {
			return fmt.Errorf("%w: template weights require 0 ≤ min ≤ max < +Inf, got min=%g max=%g",
				ErrInvalidConfig, t.MinWeight, t.MaxWeight)
		}
		if !t.IntegerWeights {
			return nil
		}
		if math.Trunc(t.MinWeight) != t.MinWeight || math.Trunc(t.MaxWeight) != t.MaxWeight {
			return fmt.Errorf("%w: integer_weights requires integral bounds, got min=%g max=%g",
				ErrInvalidConfig, t.MinWeight, t.MaxWeight)
		}
		if t.MaxWeight > MaxIntegerWeight {
			return fmt.Errorf("%w: integer_weights max=%g > %d", ErrInvalidConfig, t.MaxWeight, MaxIntegerWeight)
		}
	case DistNormal:
		if math.IsNaN(t.Mean) || math.IsInf(t.Mean, 0) || !(t.StdDev >= 0) || math.IsInf(t.StdDev, 1) {
			return fmt.Errorf("%w: normal weights require finite mean and 0 ≤ stddev < +Inf, got mean=%g stddev=%g",
				ErrInvalidConfig, t.Mean, t.StdDev)
		}
	case DistExponential:
		if !(t.Rate > 0) || math.IsInf(t.Rate, 1) {
			return fmt.Errorf("%w: exponential weights require 0 < rate < +Inf, got rate=%g", ErrInvalidConfig, t.Rate)
		}
	default:
		return fmt.Errorf("%w: unknown weight_dist %q", ErrInvalidConfig, t.WeightDist)
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// WeightFn returns the template's edge weight generator. t must have passed
// Validate; the builder constructors panic on out-of-domain parameters.
func (t Template) WeightFn() builder.WeightFn {
	switch t.WeightDist {
	case DistNormal:
		return builder.NormalWeightFn(t.Mean, t.StdDev)
	case DistExponential:
		return builder.ExponentialWeightFn(t.Rate)
	}
	if t.IntegerWeights {
		return builder.IntUniformWeightFn(int(t.MinWeight), int(t.MaxWeight))
	}

	return builder.UniformWeightFn(t.MinWeight, t.MaxWeight)
}

// BuilderOptions maps the template section onto builder options.
func (c *Config) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(c.Template.Seed),
		builder.WithDirected(c.Template.Directed),
		builder.WithWeightFn(c.Template.WeightFn()),
	}
}

// TemplateConstructor maps Template.Kind to its builder constructor.
func (c *Config) TemplateConstructor() (builder.Constructor, error) {
	t := c.Template
	switch t.Kind {
	case KindGrid:
		return builder.Grid(t.Rows, t.Cols), nil
	case KindRandom:
		return builder.RandomSparse(t.Nodes, t.Probability), nil
	case KindPath:
		return builder.Path(t.Nodes), nil
	case KindCycle:
		return builder.Cycle(t.Nodes), nil
	case KindComplete:
		return builder.Complete(t.Nodes), nil
	case KindStar:
		return builder.Star(t.Nodes), nil
	case KindWheel:
		return builder.Wheel(t.Nodes), nil
	case KindCafe:
		return builder.Cafe(), nil
	default:
		return nil, fmt.Errorf("%w: unknown template kind %q", ErrInvalidConfig, t.Kind)
	}
}

// BuildTemplate builds the configured template graph.
func (c *Config) BuildTemplate() (*core.Graph, error) {
	con, err := c.TemplateConstructor()
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(c.BuilderOptions(), con)
}

// SolverOptions maps the solver section onto dijkstra options.
func (c *Config) SolverOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if c.Solver.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.Solver.MaxDistance))
	}
	if c.Solver.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.Solver.InfEdgeThreshold))
	}

	return opts
}
