package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// percent renders a fraction as a percentage. Negative values are the
// feature sentinels and are shown by name.
func percent(v float64) string {
	switch v {
	case equity.NotApplicable:
		return "n/a"
	case equity.NoData:
		return "no data"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

func formatHoldings(hands []poker.HoleCards, limit int) string {
	if len(hands) == 0 {
		return dimStyle.Render("-")
	}
	parts := make([]string, 0, min(len(hands), limit))
	for i, h := range hands {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... (+%d)", len(hands)-limit))
			break
		}
		parts = append(parts, h.String())
	}
	return strings.Join(parts, " ")
}

func writeFooter(w io.Writer, trials int64, elapsed time.Duration) {
	fmt.Fprintf(w, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d trials in %v", trials, elapsed.Truncate(time.Millisecond))))
}

// parseBoard accepts an empty string for the preflop board.
func parseBoard(s string) (poker.Board, error) {
	b, err := poker.ParseBoard(s)
	if err != nil {
		return poker.Board{}, fmt.Errorf("board %q: %w", s, err)
	}
	return b, nil
}

func parseHole(s string) (poker.HoleCards, error) {
	h, err := poker.ParseHoleCards(s)
	if err != nil {
		return poker.HoleCards{}, fmt.Errorf("hand %q: %w", s, err)
	}
	return h, nil
}
