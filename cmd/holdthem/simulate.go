package main

import (
	"fmt"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
)

// SimulateCmd plays Monte Carlo showdowns against a range of holdings.
type SimulateCmd struct {
	Hand     string   `arg:"" help:"Hole cards, e.g. 'AhKh'"`
	Board    string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Villains []string `name:"vs" help:"Opponent holdings, comma separated; defaults to every holding" sep:","`
}

type simulateResult struct {
	Hand   string                  `json:"hand"`
	Board  string                  `json:"board"`
	Range  int                     `json:"range"`
	Result equity.SimulationResult `json:"result"`
	Win    float64                 `json:"win"`
	Tie    float64                 `json:"tie"`
	Lose   float64                 `json:"lose"`
	Equity float64                 `json:"equity"`
}

func (cmd *SimulateCmd) Run(g *Globals, d *deps) error {
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
	villains, err := parseRange(cmd.Villains)
	if err != nil {
		return err
	}
	opts, err := s.options()
	if err != nil {
		return err
	}

	trials := s.cfg.Simulation.Trials
	start := s.clock.Now()
	r, err := equity.NewSimulator(opts...).Simulate(s.ctx, hole, villains, board, trials)
	if err != nil {
		return err
	}
	elapsed := s.clock.Since(start)

	res := simulateResult{
		Hand:   hole.String(),
		Board:  board.String(),
		Range:  len(villains),
		Result: r,
		Equity: r.Equity(),
	}
	res.Win, _ = r.WinFrac()
	res.Tie, _ = r.TieFrac()
	res.Lose, _ = r.LoseFrac()

	if s.json {
		return writeJSON(s.out, res)
	}

	if !board.IsEmpty() {
		fmt.Fprintf(s.out, "%s\n%s\n\n", headerStyle.Render("board"), res.Board)
	}
	w := newTable(s.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("range"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("lose"),
		headerStyle.Render("equity"))
	lo, hi := r.ConfidenceInterval()
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
		handStyle.Render(res.Hand),
		res.Range,
		winStyle.Render(percent(res.Win)),
		tieStyle.Render(percent(res.Tie)),
		loseStyle.Render(percent(res.Lose)),
		fmt.Sprintf("%s (%s-%s)", percent(res.Equity), percent(lo), percent(hi)))
	if err := w.Flush(); err != nil {
		return err
	}
	writeFooter(s.out, r.Trials(), elapsed)
	return nil
}

// parseRange parses explicit opponent holdings; none means every holding.
func parseRange(holdings []string) ([]poker.HoleCards, error) {
	if len(holdings) == 0 {
		return equity.AllHoleCards(), nil
	}
	villains := make([]poker.HoleCards, 0, len(holdings))
	for _, s := range holdings {
		h, err := parseHole(s)
		if err != nil {
			return nil, err
		}
		villains = append(villains, h)
	}
	return villains, nil
}
