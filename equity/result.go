package equity

import (
	"fmt"
	"math"

	"github.com/lox/holdthem/poker"
)

// SimulationResult counts showdown outcomes from the hero's point of view.
type SimulationResult struct {
	Wins   int64 `json:"wins"`
	Ties   int64 `json:"ties"`
	Losses int64 `json:"losses"`
}

// Trials returns the number of completed trials.
func (r SimulationResult) Trials() int64 {
	return r.Wins + r.Ties + r.Losses
}

func (r SimulationResult) frac(n int64) (float64, bool) {
	total := r.Trials()
	if total == 0 {
		return 0, false
	}
	return float64(n) / float64(total), true
}

// WinFrac returns the share of trials won; ok is false when no trials ran.
func (r SimulationResult) WinFrac() (float64, bool) { return r.frac(r.Wins) }

// TieFrac returns the share of trials tied; ok is false when no trials ran.
func (r SimulationResult) TieFrac() (float64, bool) { return r.frac(r.Ties) }

// LoseFrac returns the share of trials lost; ok is false when no trials ran.
func (r SimulationResult) LoseFrac() (float64, bool) { return r.frac(r.Losses) }

// Equity returns the overall equity (0.0 to 1.0).
// Wins count as 1.0, ties count as 0.5
func (r SimulationResult) Equity() float64 {
	total := r.Trials()
	if total == 0 {
		return 0.0
	}
	return (float64(r.Wins) + float64(r.Ties)*0.5) / float64(total)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (r SimulationResult) ConfidenceInterval() (lower, upper float64) {
	n := float64(r.Trials())
	if n == 0 {
		return 0.0, 0.0
	}
	equity := r.Equity()

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

func (r *SimulationResult) record(o poker.Outcome) {
	switch o {
	case poker.Win:
		r.Wins++
	case poker.Tie:
		r.Ties++
	default:
		r.Losses++
	}
}

func (r *SimulationResult) add(other SimulationResult) {
	r.Wins += other.Wins
	r.Ties += other.Ties
	r.Losses += other.Losses
}

func (r SimulationResult) String() string {
	return fmt.Sprintf("%d trials: %d wins, %d ties, %d losses", r.Trials(), r.Wins, r.Ties, r.Losses)
}
