package equity

import (
	"fmt"

	"github.com/lox/holdthem/poker"
)

// NutResult partitions every opponent holding by how it fares against the
// hero on the current board, before any further cards are dealt.
type NutResult struct {
	Better []poker.HoleCards
	Tied   []poker.HoleCards
	Worse  []poker.HoleCards
}

// Total returns the number of classified holdings.
func (n NutResult) Total() int {
	return len(n.Better) + len(n.Tied) + len(n.Worse)
}

func (n NutResult) frac(k int) float64 {
	total := n.Total()
	if total == 0 {
		return 0
	}
	return float64(k) / float64(total)
}

// FracBetter returns the share of holdings currently ahead of the hero.
func (n NutResult) FracBetter() float64 { return n.frac(len(n.Better)) }

// FracTied returns the share of holdings currently level with the hero.
func (n NutResult) FracTied() float64 { return n.frac(len(n.Tied)) }

// FracWorse returns the share of holdings currently behind the hero.
func (n NutResult) FracWorse() float64 { return n.frac(len(n.Worse)) }

// Classify ranks the hero against all 1325 other two-card holdings on a flop,
// turn or river board. Holdings that share a card with the hero or the board
// are still classified, on their distinct cards, so the buckets always sum to
// 1325. A nil ranker means poker.DefaultRanker.
func Classify(hero poker.HoleCards, board poker.Board, ranker poker.Ranker) (NutResult, error) {
	if board.Len() < 3 {
		return NutResult{}, fmt.Errorf("%w: got %d", ErrBoardRequired, board.Len())
	}
	if ranker == nil {
		ranker = poker.DefaultRanker
	}
	dead := poker.DeadCards(hero, board)
	if dead.Len() != 2+board.Len() {
		return NutResult{}, fmt.Errorf("%w: %s on %s", ErrCardConflict, hero, board.String())
	}

	heroHand := poker.MakeHand(hero, &board)
	heroStrength := ranker.Rank(&heroHand)

	var result NutResult
	var opp poker.Hand
	for _, h := range AllHoleCards() {
		if h == hero {
			continue
		}
		opp = poker.MakeHand(h, &board)
		if dead.Intersects(h) {
			opp = opp.Distinct()
		}
		switch poker.Compare(heroStrength, ranker.Rank(&opp)) {
		case poker.Win:
			result.Worse = append(result.Worse, h)
		case poker.Lose:
			result.Better = append(result.Better, h)
		default:
			result.Tied = append(result.Tied, h)
		}
	}
	return result, nil
}
