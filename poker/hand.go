package poker

import "fmt"

// Hand is a player's hole cards combined with the board: five, six or seven
// cards. It is the only value handed to a Ranker and is built on demand.
type Hand struct {
	cards [7]Card
	n     uint8
}

// NewHand combines hole cards with a flop, turn or river board.
func NewHand(hole HoleCards, board Board) (Hand, error) {
	if board.IsEmpty() {
		return Hand{}, fmt.Errorf("%w: hand needs at least a flop", ErrBoardSize)
	}
	return makeHand(hole, &board), nil
}

// MakeHand is NewHand without the board check, for hot paths that already
// guarantee a non-empty board.
func MakeHand(hole HoleCards, board *Board) Hand {
	return makeHand(hole, board)
}

func makeHand(hole HoleCards, board *Board) Hand {
	h := Hand{n: 2}
	h.cards[0] = hole[0]
	h.cards[1] = hole[1]
	for _, c := range board.Cards() {
		h.cards[h.n] = c
		h.n++
	}
	return h
}

// Distinct returns the hand with repeated cards dropped, keeping the first
// occurrence. Hands built from hole cards that overlap the board are only
// meaningful once collapsed this way.
func (h Hand) Distinct() Hand {
	var out Hand
	var seen CardSet
	for _, c := range h.cards[:h.n] {
		if seen.Contains(c) {
			continue
		}
		seen.Insert(c)
		out.cards[out.n] = c
		out.n++
	}
	return out
}

// Len returns the number of cards in the hand (5, 6 or 7).
func (h *Hand) Len() int { return int(h.n) }

// Cards returns a view of the cards in the hand.
func (h *Hand) Cards() []Card { return h.cards[:h.n] }

// Set returns the hand's cards as a CardSet.
func (h *Hand) Set() CardSet {
	return NewCardSet(h.Cards()...)
}

func (h Hand) String() string {
	return FormatCards(h.cards[:h.n])
}
