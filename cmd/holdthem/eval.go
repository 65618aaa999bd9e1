package main

import (
	"fmt"

	"github.com/lox/holdthem/internal/config"
	"github.com/lox/holdthem/poker"
	"github.com/lox/holdthem/poker/hankin"
)

// EvalCmd ranks hole cards together with a board.
type EvalCmd struct {
	Hand  string `arg:"" help:"Hole cards, e.g. 'AcKd'"`
	Board string `arg:"" help:"Board of three to five cards, e.g. 'Td7s8h'"`
}

type evalResult struct {
	Hand        string `json:"hand"`
	Board       string `json:"board"`
	Ranker      string `json:"ranker"`
	Description string `json:"description"`
	Strength    int32  `json:"strength"`
}

func (cmd *EvalCmd) Run(g *Globals, d *deps) error {
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
	if board.Set().Intersects(hole) {
		return fmt.Errorf("%w: hand %s overlaps board %s", poker.ErrDuplicateCard, hole, board)
	}
	hand, err := poker.NewHand(hole, board)
	if err != nil {
		return err
	}

	ranker, err := s.cfg.Simulation.ParseRanker()
	if err != nil {
		return err
	}
	res := evalResult{
		Hand:     hole.String(),
		Board:    board.String(),
		Ranker:   s.cfg.Simulation.Ranker,
		Strength: int32(ranker.Rank(&hand)),
	}
	if s.cfg.Simulation.Ranker == config.RankerHankin {
		if res.Description, err = hankin.Describe(&hand); err != nil {
			return err
		}
	} else {
		res.Description = poker.Evaluate(&hand).String()
	}

	s.logger.Debug().Str("hand", res.Hand).Str("board", res.Board).Int32("strength", res.Strength).Msg("Evaluated hand")

	if s.json {
		return writeJSON(s.out, res)
	}
	w := newTable(s.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("board"),
		headerStyle.Render("rank"),
		headerStyle.Render("strength"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
		handStyle.Render(res.Hand),
		res.Board,
		categoryStyle.Render(res.Description),
		res.Strength)
	return w.Flush()
}
