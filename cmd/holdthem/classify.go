package main

import (
	"fmt"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
)

// ClassifyCmd splits all opponent holdings by how they stand on the board.
type ClassifyCmd struct {
	Hand  string `arg:"" help:"Hole cards, e.g. 'AcAh'"`
	Board string `arg:"" help:"Board of three to five cards, e.g. '3s7d8c'"`
	Show  int    `help:"List up to this many holdings per bucket" default:"0"`
}

type bucketSummary struct {
	Count    int      `json:"count"`
	Fraction float64  `json:"fraction"`
	Holdings []string `json:"holdings,omitempty"`
}

type classifyResult struct {
	Hand   string        `json:"hand"`
	Board  string        `json:"board"`
	Better bucketSummary `json:"better"`
	Tied   bucketSummary `json:"tied"`
	Worse  bucketSummary `json:"worse"`
}

func (cmd *ClassifyCmd) Run(g *Globals, d *deps) error {
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
	ranker, err := s.cfg.Simulation.ParseRanker()
	if err != nil {
		return err
	}

	nuts, err := equity.Classify(hole, board, ranker)
	if err != nil {
		return err
	}
	s.logger.Debug().
		Str("hand", hole.String()).
		Str("board", board.String()).
		Int("better", len(nuts.Better)).
		Int("tied", len(nuts.Tied)).
		Int("worse", len(nuts.Worse)).
		Msg("Classified holdings")

	res := classifyResult{
		Hand:   hole.String(),
		Board:  board.String(),
		Better: summarize(nuts.Better, nuts.FracBetter(), cmd.Show),
		Tied:   summarize(nuts.Tied, nuts.FracTied(), cmd.Show),
		Worse:  summarize(nuts.Worse, nuts.FracWorse(), cmd.Show),
	}
	if s.json {
		return writeJSON(s.out, res)
	}

	fmt.Fprintf(s.out, "%s %s\n\n", handStyle.Render(res.Hand), res.Board)
	w := newTable(s.out)
	fmt.Fprintf(w, "%s\t%s\t%s",
		headerStyle.Render("bucket"), headerStyle.Render("count"), headerStyle.Render("share"))
	if cmd.Show > 0 {
		fmt.Fprintf(w, "\t%s", headerStyle.Render("holdings"))
	}
	fmt.Fprintln(w)

	rows := []struct {
		name  string
		sum   bucketSummary
		hands []poker.HoleCards
	}{
		{"better", res.Better, nuts.Better},
		{"tied", res.Tied, nuts.Tied},
		{"worse", res.Worse, nuts.Worse},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s", categoryStyle.Render(row.name), row.sum.Count, percent(row.sum.Fraction))
		if cmd.Show > 0 {
			fmt.Fprintf(w, "\t%s", formatHoldings(row.hands, cmd.Show))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func summarize(hands []poker.HoleCards, frac float64, show int) bucketSummary {
	b := bucketSummary{Count: len(hands), Fraction: frac}
	for i := 0; i < show && i < len(hands); i++ {
		b.Holdings = append(b.Holdings, hands[i].String())
	}
	return b
}
