package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/internal/config"
)

// Globals are flags shared by every subcommand. Set values override the
// config file and the environment.
type Globals struct {
	Config    string `help:"Path to HCL config file" default:"holdthem.hcl"`
	Debug     bool   `help:"Enable debug logging"`
	LogFormat string `help:"Log format (console or json)"`
	NoColor   bool   `help:"Disable coloured output"`
	JSON      bool   `help:"Write results as JSON"`

	Trials   int64  `short:"n" help:"Trials per simulation"`
	Seed     *int64 `help:"Random seed for reproducible results"`
	Workers  *int   `help:"Simulation workers (0 = one per CPU)"`
	Ranker   string `help:"Hand ranker (builtin or hankin)"`
	Sampling string `help:"Opponent sampling (with-replacement or without-replacement)"`
}

// deps carries the process resources a command touches, so tests can swap
// them out.
type deps struct {
	ctx       context.Context
	out       io.Writer
	errOut    io.Writer
	clock     quartz.Clock
	lookupEnv func(string) (string, bool)
}

// session is the resolved configuration for one command run.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	logger zerolog.Logger
	out    io.Writer
	clock  quartz.Clock
	json   bool
}

func (g *Globals) load(d *deps) (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	lookup := d.lookupEnv
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	g.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if g.Debug {
		level = zerolog.DebugLevel
	}

	ctx := d.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	clock := d.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &session{
		ctx:    ctx,
		cfg:    cfg,
		logger: setupLogger(d.errOut, cfg.Log.Format, level),
		out:    d.out,
		clock:  clock,
		json:   g.JSON,
	}, nil
}

func (g *Globals) apply(cfg *config.Config) {
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if g.Trials != 0 {
		cfg.Simulation.Trials = g.Trials
	}
	if g.Seed != nil {
		seed := *g.Seed
		cfg.Simulation.Seed = &seed
	}
	if g.Workers != nil {
		cfg.Simulation.Workers = *g.Workers
	}
	if g.Ranker != "" {
		cfg.Simulation.Ranker = g.Ranker
	}
	if g.Sampling != "" {
		cfg.Simulation.Sampling = g.Sampling
	}
}

// options builds simulator options from the session configuration.
func (s *session) options() ([]equity.Option, error) {
	return s.cfg.Simulation.Options(s.logger)
}
