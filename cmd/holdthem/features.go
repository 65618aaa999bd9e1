package main

import (
	"context"
	"fmt"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/internal/store"
)

// FeaturesCmd computes the flat feature record for a hand.
type FeaturesCmd struct {
	Hand  string `arg:"" help:"Hole cards, e.g. 'AcAh'"`
	Board string `arg:"" optional:"" help:"Board cards; empty for preflop"`
	Cache bool   `help:"Read and write the SQLite feature cache"`
}

type featuresResult struct {
	Hand     string          `json:"hand"`
	Board    string          `json:"board"`
	Cached   bool            `json:"cached"`
	Features equity.Features `json:"features"`
}

func (cmd *FeaturesCmd) Run(g *Globals, d *deps) error {
	s, err := g.load(d)
	if err != nil {
		return err
	}
	hole, err := parseHole(cmd.Hand)
	if err != nil {
		return err
	}
	board, err := parseBoard(cmd.Board)
	if err != nil {
		return err
	}

	sim := s.cfg.Simulation
	trials := sim.Trials
	useCache := (cmd.Cache || s.cfg.Cache.Enabled) && !board.IsEmpty()
	if sim.Seed == nil && useCache {
		// Cached entries must be reproducible from their key.
		seed := equity.SeedFor(hole, board, trials)
		sim.Seed = &seed
	}
	opts, err := sim.Options(s.logger)
	if err != nil {
		return err
	}
	compute := func(ctx context.Context) (equity.Features, error) {
		return equity.ComputeFeatures(ctx, hole, board, trials, opts...)
	}

	start := s.clock.Now()
	res := featuresResult{Hand: hole.String(), Board: board.String()}
	if useCache {
		db, openErr := store.Open(s.cfg.Cache.Path, s.logger)
		if openErr != nil {
			return openErr
		}
		defer db.Close()

		key := store.Key{
			Hero:     hole,
			Board:    board,
			Trials:   trials,
			Ranker:   sim.Ranker,
			Sampling: sim.Sampling,
			Seed:     *sim.Seed,
		}
		res.Features, res.Cached, err = db.GetOrCompute(s.ctx, key, compute)
	} else {
		res.Features, err = compute(s.ctx)
	}
	if err != nil {
		return err
	}
	elapsed := s.clock.Since(start)

	s.logger.Debug().
		Str("hand", res.Hand).
		Str("board", res.Board).
		Bool("cached", res.Cached).
		Dur("elapsed", elapsed).
		Msg("Computed features")

	if s.json {
		return writeJSON(s.out, res)
	}

	w := newTable(s.out)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("feature"), headerStyle.Render("value"))
	vec := res.Features.Vector()
	for i, name := range equity.FeatureNames {
		fmt.Fprintf(w, "%s\t%s\n", categoryStyle.Render(name), percent(vec[i]))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if board.IsEmpty() {
		fmt.Fprintf(s.out, "\n%s\n", dimStyle.Render("preflop table lookup"))
		return nil
	}
	if res.Cached {
		fmt.Fprintf(s.out, "\n%s\n", dimStyle.Render("from cache"))
		return nil
	}
	writeFooter(s.out, trials, elapsed)
	return nil
}
