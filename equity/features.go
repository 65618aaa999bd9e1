package equity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdthem/poker"
)

// Sentinel feature values. Both are negative so they cannot be mistaken for
// a probability.
const (
	// NotApplicable marks the versus-category fields before the flop, when
	// there is no board to classify against.
	NotApplicable = -1.0
	// NoData marks the odds against a category with no holdings, or whose
	// holdings are all blocked by the hero's cards and the board.
	NoData = -2.0
)

// Features is the flat record consumed by models and embeddings.
//
// Win, Tie and Lose weight each category's odds by its share of all 1325
// holdings. A category whose holdings are all blocked by the hero's cards or
// the board reports NoData and adds nothing, while its fraction still counts,
// so the three aggregate odds can sum to less than one.
type Features struct {
	FracBetter float64 `json:"frac_better_hands"`
	FracTied   float64 `json:"frac_tied_hands"`
	FracWorse  float64 `json:"frac_worse_hands"`

	Win  float64 `json:"win_odds"`
	Tie  float64 `json:"tie_odds"`
	Lose float64 `json:"lose_odds"`

	WinVsBetter  float64 `json:"win_odds_vs_better"`
	TieVsBetter  float64 `json:"tie_odds_vs_better"`
	LoseVsBetter float64 `json:"lose_odds_vs_better"`

	WinVsTied  float64 `json:"win_odds_vs_tied"`
	TieVsTied  float64 `json:"tie_odds_vs_tied"`
	LoseVsTied float64 `json:"lose_odds_vs_tied"`

	WinVsWorse  float64 `json:"win_odds_vs_worse"`
	TieVsWorse  float64 `json:"tie_odds_vs_worse"`
	LoseVsWorse float64 `json:"lose_odds_vs_worse"`
}

// FeatureNames lists the fields in Vector order.
var FeatureNames = [15]string{
	"frac_better_hands", "frac_tied_hands", "frac_worse_hands",
	"win_odds", "tie_odds", "lose_odds",
	"win_odds_vs_better", "tie_odds_vs_better", "lose_odds_vs_better",
	"win_odds_vs_tied", "tie_odds_vs_tied", "lose_odds_vs_tied",
	"win_odds_vs_worse", "tie_odds_vs_worse", "lose_odds_vs_worse",
}

// Vector returns the features in FeatureNames order.
func (f Features) Vector() [15]float64 {
	return [15]float64{
		f.FracBetter, f.FracTied, f.FracWorse,
		f.Win, f.Tie, f.Lose,
		f.WinVsBetter, f.TieVsBetter, f.LoseVsBetter,
		f.WinVsTied, f.TieVsTied, f.LoseVsTied,
		f.WinVsWorse, f.TieVsWorse, f.LoseVsWorse,
	}
}

// FeaturesFromVector is the inverse of Features.Vector.
func FeaturesFromVector(v [15]float64) Features {
	return Features{
		FracBetter: v[0], FracTied: v[1], FracWorse: v[2],
		Win: v[3], Tie: v[4], Lose: v[5],
		WinVsBetter: v[6], TieVsBetter: v[7], LoseVsBetter: v[8],
		WinVsTied: v[9], TieVsTied: v[10], LoseVsTied: v[11],
		WinVsWorse: v[12], TieVsWorse: v[13], LoseVsWorse: v[14],
	}
}

// PreflopFeatures looks the hand up in the embedded preflop table. Only the
// aggregate odds are known; everything else is NotApplicable.
func PreflopFeatures(hero poker.HoleCards) Features {
	odds := PreflopLookup(hero)
	return Features{
		FracBetter: NotApplicable, FracTied: NotApplicable, FracWorse: NotApplicable,
		Win: odds.Win, Tie: odds.Tie, Lose: odds.Lose,
		WinVsBetter: NotApplicable, TieVsBetter: NotApplicable, LoseVsBetter: NotApplicable,
		WinVsTied: NotApplicable, TieVsTied: NotApplicable, LoseVsTied: NotApplicable,
		WinVsWorse: NotApplicable, TieVsWorse: NotApplicable, LoseVsWorse: NotApplicable,
	}
}

// bucketOdds is the win/tie/lose split against one category.
type bucketOdds struct {
	win, tie, lose float64
	ok             bool
}

func oddsFrom(r SimulationResult) bucketOdds {
	win, ok := r.WinFrac()
	if !ok {
		return bucketOdds{win: NoData, tie: NoData, lose: NoData}
	}
	tie, _ := r.TieFrac()
	lose, _ := r.LoseFrac()
	return bucketOdds{win: win, tie: tie, lose: lose, ok: true}
}

// ComputeFeatures builds the feature record for a hand. Before the flop it is
// a table lookup. Afterwards the board is classified and each non-empty
// category is simulated for trials run-outs, concurrently; the aggregate odds
// weight each category's odds by its share of holdings.
func ComputeFeatures(ctx context.Context, hero poker.HoleCards, board poker.Board, trials int64, opts ...Option) (Features, error) {
	if trials < 0 {
		return Features{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	if board.IsEmpty() {
		return PreflopFeatures(hero), nil
	}

	sim := NewSimulator(opts...)
	nuts, err := Classify(hero, board, sim.Ranker())
	if err != nil {
		return Features{}, err
	}

	buckets := [3][]poker.HoleCards{nuts.Better, nuts.Tied, nuts.Worse}
	var results [3]SimulationResult

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		bucketSim := sim.derive(i)
		g.Go(func() error {
			r, err := bucketSim.Simulate(gctx, hero, bucket, board, trials)
			if errors.Is(err, ErrEmptyRange) {
				return nil
			}
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Features{}, err
	}

	better, tied, worse := oddsFrom(results[0]), oddsFrom(results[1]), oddsFrom(results[2])
	f := Features{
		FracBetter: nuts.FracBetter(),
		FracTied:   nuts.FracTied(),
		FracWorse:  nuts.FracWorse(),

		WinVsBetter: better.win, TieVsBetter: better.tie, LoseVsBetter: better.lose,
		WinVsTied: tied.win, TieVsTied: tied.tie, LoseVsTied: tied.lose,
		WinVsWorse: worse.win, TieVsWorse: worse.tie, LoseVsWorse: worse.lose,
	}

	weighted := [3]struct {
		frac float64
		odds bucketOdds
	}{{f.FracBetter, better}, {f.FracTied, tied}, {f.FracWorse, worse}}
	for _, b := range weighted {
		if !b.odds.ok {
			continue
		}
		f.Win += b.frac * b.odds.win
		f.Tie += b.frac * b.odds.tie
		f.Lose += b.frac * b.odds.lose
	}
	return f, nil
}
