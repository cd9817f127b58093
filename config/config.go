// Package config loads the YAML run file of an lvhawkes sweep and builds the
// process logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// ErrInvalidConfig indicates a run file that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Reference θ modes.
const (
	ReferencePerGraph = "per-graph"
	ReferenceMean     = "mean"
)

// Feature sets.
const (
	FeaturesGraphlets = "graphlets"
	FeaturesDegree    = "degree"
)

// Environment overrides for logging.
const (
	EnvLogFile  = "LVHAWKES_LOG_FILE"
	EnvLogLevel = "LVHAWKES_LOG_LEVEL"
)

// Range is a linearly spaced fraction grid [Lo, Hi] with Count points.
type Range struct {
	Lo    float64 `yaml:"lo"`
	Hi    float64 `yaml:"hi"`
	Count int     `yaml:"count"`
}

// Probe configures exact single-seed probing.
type Probe struct {
	// Fraction of each graph's critical θ to probe at. Ignored when Theta is set.
	Fraction float64 `yaml:"fraction"`
	// Theta, when set, is used as an absolute θ for every graph; 0 is valid.
	Theta       *float64 `yaml:"theta"`
	Generations int     `yaml:"generations"` // 0 ⇒ exact solve
	Output      string  `yaml:"output"`
}

// Config holds all configuration values of a run.
type Config struct {
	// Dataset
	GraphDir    string `yaml:"graph_dir"`
	GraphletDir string `yaml:"graphlet_dir"`
	Influence   string `yaml:"influence"`

	// Sweep
	Fractions Range   `yaml:"fractions"`
	Reference string  `yaml:"reference"`
	Epsilon   float64 `yaml:"epsilon"`
	Solver    string  `yaml:"solver"`
	CacheSize int     `yaml:"cache_size"`
	Workers   int     `yaml:"workers"`

	// Harness
	Features     string  `yaml:"features"`
	Orbits       []int   `yaml:"orbits"`
	TestFraction float64 `yaml:"test_fraction"`
	Seed         int64   `yaml:"seed"`
	TopK         []int   `yaml:"top_k"`
	// SpreadFraction picks the grid point whose model is scored against
	// every other θ; the nearest fraction on the grid is used.
	SpreadFraction float64 `yaml:"spread_fraction"`
	// SmoothWindow is the trailing window of the smoothed coefficient
	// trajectories; values below 2 leave them unsmoothed.
	SmoothWindow int `yaml:"smooth_window"`

	// Outputs
	Output             string `yaml:"output"`
	LabelsOutput       string `yaml:"labels_output"`
	CoefficientsOutput string `yaml:"coefficients_output"`
	MetricsFile        string `yaml:"metrics_file"`

	Probe Probe `yaml:"probe"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used for every field a run file omits.
// The fraction grid is 500 points over [0.7, 1.0]; the spread model is fit
// at 0.95.
func Default() *Config {
	return &Config{
		GraphDir:       "graphs",
		GraphletDir:    "graphlets",
		Influence:      core.InfluenceAdjacency.String(),
		Fractions:      Range{Lo: 0.7, Hi: 1.0, Count: 500},
		Reference:      ReferencePerGraph,
		Epsilon:        1e-9,
		Solver:         spectral.SolverGonum.String(),
		CacheSize:      spectral.DefaultCacheSize,
		Workers:        4,
		Features:       FeaturesGraphlets,
		Orbits:         []int{1, 0, 10, 11},
		TestFraction:   0.3,
		Seed:           64,
		TopK:           []int{1, 5, 10},
		SpreadFraction: 0.95,
		SmoothWindow:   20,
		Output:         "summary.csv",
		Probe:          Probe{Fraction: 0.96},
		LogFile:        "lvhawkes.log",
		LogLevel:       "INFO",
	}
}

// Load reads a YAML run file on top of Default, applies the logging
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides the logging fields from the environment.
func (c *Config) ApplyEnv() {
	c.LogFile = getEnv(EnvLogFile, c.LogFile)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
}

// Validate checks every field and reports all violations at once.
func (c *Config) Validate() error {
	var errs []string
	fail := func(format string, args ...any) { errs = append(errs, fmt.Sprintf(format, args...)) }

	if c.GraphDir == "" {
		fail("graph_dir is empty")
	}
	if _, err := core.ParseInfluenceKind(c.Influence); err != nil {
		fail("influence: %v", err)
	}
	if c.Fractions.Count < 1 || !(c.Fractions.Lo >= 0) || !(c.Fractions.Hi >= c.Fractions.Lo) {
		fail("fractions: need 0 <= lo <= hi and count >= 1, got %+v", c.Fractions)
	}
	if c.Reference != ReferencePerGraph && c.Reference != ReferenceMean {
		fail("reference: %q not in {%s, %s}", c.Reference, ReferencePerGraph, ReferenceMean)
	}
	if !(c.Epsilon > 0 && c.Epsilon < 1) {
		fail("epsilon: %g not in (0,1)", c.Epsilon)
	}
	if _, err := spectral.ParseSolver(c.Solver); err != nil {
		fail("solver: %v", err)
	}
	if c.CacheSize < 1 {
		fail("cache_size: %d < 1", c.CacheSize)
	}
	if c.Workers < 1 {
		fail("workers: %d < 1", c.Workers)
	}
	switch c.Features {
	case FeaturesDegree:
	case FeaturesGraphlets:
		if c.GraphletDir == "" {
			fail("features=graphlets needs graphlet_dir")
		}
	default:
		fail("features: %q not in {%s, %s}", c.Features, FeaturesGraphlets, FeaturesDegree)
	}
	if !(c.TestFraction > 0 && c.TestFraction < 1) {
		fail("test_fraction: %g not in (0,1)", c.TestFraction)
	}
	for _, k := range c.TopK {
		if k < 1 {
			fail("top_k: %d < 1", k)
		}
	}
	if !(c.SpreadFraction >= 0) {
		fail("spread_fraction: %g < 0", c.SpreadFraction)
	}
	if c.SmoothWindow < 0 {
		fail("smooth_window: %d < 0", c.SmoothWindow)
	}
	if c.Probe.Theta != nil && !(*c.Probe.Theta >= 0) {
		fail("probe.theta: %g < 0", *c.Probe.Theta)
	}
	if c.Probe.Fraction < 0 || c.Probe.Generations < 0 {
		fail("probe: negative fraction %g or generations %d", c.Probe.Fraction, c.Probe.Generations)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		fail("log_level: %q", c.LogLevel)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// InfluenceKind returns the parsed influence kind. Call after Validate.
func (c *Config) InfluenceKind() core.InfluenceKind {
	k, _ := core.ParseInfluenceKind(c.Influence)
	return k
}

// SpectralSolver returns the parsed solver. Call after Validate.
func (c *Config) SpectralSolver() spectral.Solver {
	s, _ := spectral.ParseSolver(c.Solver)
	return s
}

// Level returns the parsed log level, INFO when unknown.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "", "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
