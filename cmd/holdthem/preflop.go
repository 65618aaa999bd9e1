package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
)

// PreflopCmd prints the embedded preflop odds, optionally for one hand.
type PreflopCmd struct {
	Hand string `arg:"" optional:"" help:"Only show the class of these hole cards"`
	Sort bool   `help:"Order by equity, strongest first"`
}

type preflopRow struct {
	Class    string  `json:"class"`
	Category string  `json:"category"`
	Win      float64 `json:"win"`
	Tie      float64 `json:"tie"`
	Lose     float64 `json:"lose"`
	Equity   float64 `json:"equity"`
}

func (cmd *PreflopCmd) Run(g *Globals, d *deps) error {
	s, err := g.load(d)
	if err != nil {
		return err
	}

	table := equity.PreflopTableOdds()
	var rows []preflopRow
	if cmd.Hand != "" {
		hole, err := parseHole(cmd.Hand)
		if err != nil {
			return err
		}
		rows = append(rows, preflopRowFor(hole.PreflopIndex(), table[hole.PreflopIndex()]))
	} else {
		rows = make([]preflopRow, 0, poker.NumPreflopClasses)
		for idx := range poker.NumPreflopClasses {
			rows = append(rows, preflopRowFor(idx, table[idx]))
		}
	}
	if cmd.Sort {
		sortByEquity(rows)
	}

	if s.json {
		return writeJSON(s.out, rows)
	}
	w := newTable(s.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("lose"),
		headerStyle.Render("equity"))
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(r.Class),
			categoryStyle.Render(r.Category),
			winStyle.Render(percent(r.Win)),
			tieStyle.Render(percent(r.Tie)),
			loseStyle.Render(percent(r.Lose)),
			percent(r.Equity))
	}
	return w.Flush()
}

func preflopRowFor(idx int, odds equity.PreflopOdds) preflopRow {
	return preflopRow{
		Class:    odds.Category,
		Category: string(poker.CategoryForPreflopIndex(idx)),
		Win:      odds.Win,
		Tie:      odds.Tie,
		Lose:     odds.Lose,
		Equity:   odds.Equity(),
	}
}

func sortByEquity(rows []preflopRow) {
	slices.SortStableFunc(rows, func(a, b preflopRow) int {
		return cmp.Compare(b.Equity, a.Equity)
	})
}
