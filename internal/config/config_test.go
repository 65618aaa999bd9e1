package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
	"github.com/lox/holdthem/poker/hankin"
)

func ptr[T any](v T) *T { return &v }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdthem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int64(defaultTrials), cfg.Simulation.Trials)
	assert.Equal(t, 1, cfg.Simulation.Workers)
	assert.Equal(t, RankerBuiltin, cfg.Simulation.Ranker)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
simulation {
  trials   = 50000
  workers  = 4
  seed     = 1234
  sampling = "without-replacement"
  ranker   = "hankin"
}

log {
  level  = "debug"
  format = "json"
}

cache {
  enabled = true
  path    = "/tmp/features.db"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, &SimulationSettings{
		Trials:   50000,
		Workers:  4,
		Seed:     ptr(int64(1234)),
		Sampling: "without-replacement",
		Ranker:   "hankin",
	}, cfg.Simulation)
	assert.Equal(t, &LogSettings{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, &CacheSettings{Enabled: true, Path: "/tmp/features.db"}, cfg.Cache)

	ranker, err := cfg.Simulation.ParseRanker()
	require.NoError(t, err)
	assert.Equal(t, hankin.Ranker{}, ranker)
}

func TestLoadPartialFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load(writeConfig(t, "log {\n  level = \"warn\"\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(defaultTrials), cfg.Simulation.Trials)
}

func TestLoadInvalidFile(t *testing.T) {
	t.Parallel()
	_, err := Load(writeConfig(t, "simulation {\n  trials = \n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "simulation {\n  unknown = 1\n}\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "all variables set",
			env: map[string]string{
				EnvTrials:  "2500",
				EnvSeed:    "12345",
				EnvWorkers: "3",
				EnvCache:   "cache.db",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(2500), cfg.Simulation.Trials)
				require.NotNil(t, cfg.Simulation.Seed)
				assert.Equal(t, int64(12345), *cfg.Simulation.Seed)
				assert.Equal(t, 3, cfg.Simulation.Workers)
				assert.True(t, cfg.Cache.Enabled)
				assert.Equal(t, "cache.db", cfg.Cache.Path)
			},
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "zero seed is kept",
			env:  map[string]string{EnvSeed: "0"},
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Simulation.Seed)
				assert.Zero(t, *cfg.Simulation.Seed)
			},
		},
		{name: "invalid seed", env: map[string]string{EnvSeed: "not-a-number"}, wantErr: true},
		{name: "invalid trials", env: map[string]string{EnvTrials: "1e6"}, wantErr: true},
		{name: "invalid workers", env: map[string]string{EnvWorkers: "many"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			err := cfg.ApplyEnv(func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative trials", func(c *Config) { c.Simulation.Trials = -1 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"unknown sampling", func(c *Config) { c.Simulation.Sampling = "stratified" }},
		{"unknown ranker", func(c *Config) { c.Simulation.Ranker = "twoplustwo" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()
	settings := &SimulationSettings{Workers: 2, Seed: ptr(int64(9)), Ranker: RankerBuiltin}
	opts, err := settings.Options(zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	settings.Seed = ptr(int64(0))
	opts, err = settings.Options(zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	settings.Seed = nil
	opts, err = settings.Options(zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	ranker, err := settings.ParseRanker()
	require.NoError(t, err)
	assert.Equal(t, poker.DefaultRanker, ranker)

	settings.Ranker = "nope"
	_, err = settings.Options(zerolog.Nop())
	assert.Error(t, err)
}

func TestZeroSeedIsReproducible(t *testing.T) {
	t.Parallel()
	cfg, err := Load(writeConfig(t, "simulation {\n  seed = 0\n}\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Zero(t, *cfg.Simulation.Seed)

	opts, err := cfg.Simulation.Options(zerolog.Nop())
	require.NoError(t, err)

	hero := poker.MustParseHoleCards("AhKh")
	villains := []poker.HoleCards{poker.MustParseHoleCards("QsQd")}
	board := poker.MustParseBoard("7h2h3c")
	a, err := equity.NewSimulator(opts...).Simulate(context.Background(), hero, villains, board, 2000)
	require.NoError(t, err)
	b, err := equity.NewSimulator(opts...).Simulate(context.Background(), hero, villains, board, 2000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
