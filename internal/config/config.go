// Package config loads holdthem settings from an HCL file and the environment.
// Precedence, lowest first: built-in defaults, the file, environment
// variables, command line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
	"github.com/lox/holdthem/poker/hankin"
)

// Environment variable names
const (
	// EnvTrials overrides the number of trials per simulation
	EnvTrials = "HOLDTHEM_TRIALS"

	// EnvSeed provides a random seed for deterministic output
	EnvSeed = "HOLDTHEM_SEED"

	// EnvWorkers overrides the number of simulation workers
	EnvWorkers = "HOLDTHEM_WORKERS"

	// EnvCache enables the feature cache at the given path
	EnvCache = "HOLDTHEM_CACHE"
)

// Ranker names accepted in configuration.
const (
	RankerBuiltin = "builtin"
	RankerHankin  = hankin.Name
)

const (
	defaultTrials    = 10000
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultCachePath = "holdthem.db"
)

// Config represents the complete configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Log        *LogSettings        `hcl:"log,block"`
	Cache      *CacheSettings      `hcl:"cache,block"`
}

// SimulationSettings controls the Monte Carlo simulator.
type SimulationSettings struct {
	Trials   int64  `hcl:"trials,optional"`
	Workers  int    `hcl:"workers,optional"`
	Seed     *int64 `hcl:"seed,optional"` // nil means randomly seeded
	Sampling string `hcl:"sampling,optional"`
	Ranker   string `hcl:"ranker,optional"`
}

// LogSettings controls logging output.
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// CacheSettings controls the SQLite feature cache.
type CacheSettings struct {
	Enabled bool   `hcl:"enabled,optional"`
	Path    string `hcl:"path,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Cache == nil {
		c.Cache = &CacheSettings{}
	}

	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = defaultTrials
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 1
	}
	if c.Simulation.Sampling == "" {
		c.Simulation.Sampling = equity.SampleWithReplacement.String()
	}
	if c.Simulation.Ranker == "" {
		c.Simulation.Ranker = RankerBuiltin
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath
	}
}

// ApplyEnv overrides settings from environment variables, looked up with
// lookup (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTrials); ok && v != "" {
		trials, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvTrials, err)
		}
		c.Simulation.Trials = trials
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Simulation.Seed = &seed
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Simulation.Workers = workers
	}
	if v, ok := lookup(EnvCache); ok && v != "" {
		c.Cache.Enabled = true
		c.Cache.Path = v
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Trials < 0 {
		return fmt.Errorf("simulation: trials must not be negative, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative, got %d", c.Simulation.Workers)
	}
	if _, err := equity.ParseSampling(c.Simulation.Sampling); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if _, err := c.Simulation.ParseRanker(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log: invalid format %q", c.Log.Format)
	}
	return nil
}

// ParseRanker resolves the configured ranker name.
func (s *SimulationSettings) ParseRanker() (poker.Ranker, error) {
	switch s.Ranker {
	case "", RankerBuiltin:
		return poker.DefaultRanker, nil
	case RankerHankin:
		return hankin.Ranker{}, nil
	}
	return nil, fmt.Errorf("unknown ranker %q", s.Ranker)
}

// Options converts the settings into simulator options. Without a seed the
// simulator is randomly seeded; zero is a valid seed.
func (s *SimulationSettings) Options(logger zerolog.Logger) ([]equity.Option, error) {
	ranker, err := s.ParseRanker()
	if err != nil {
		return nil, err
	}
	sampling, err := equity.ParseSampling(s.Sampling)
	if err != nil {
		return nil, err
	}
	opts := []equity.Option{
		equity.WithRanker(ranker),
		equity.WithWorkers(s.Workers),
		equity.WithSampling(sampling),
		equity.WithLogger(logger),
	}
	if s.Seed != nil {
		opts = append(opts, equity.WithSeed(*s.Seed))
	}
	return opts, nil
}
