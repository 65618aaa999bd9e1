package poker

import (
	"errors"
	"fmt"
)

// NumHoleCards is C(52,2), the number of distinct two-card combinations.
const NumHoleCards = NumCards * (NumCards - 1) / 2

// NumPreflopClasses is the number of strategically distinct starting hands.
const NumPreflopClasses = 169

// ErrHoleCards is returned when a hand does not hold exactly two distinct cards.
var ErrHoleCards = errors.New("hole cards must be two distinct cards")

// HoleCards is a player's two private cards, stored with the higher card first
// so that the same two cards always compare equal.
type HoleCards [2]Card

// NewHoleCards canonicalises two cards into HoleCards.
func NewHoleCards(a, b Card) (HoleCards, error) {
	if a == b {
		return HoleCards{}, fmt.Errorf("%w: %s twice", ErrHoleCards, a)
	}
	if !a.Valid() || !b.Valid() {
		return HoleCards{}, fmt.Errorf("%w: out of range", ErrInvalidCard)
	}
	if a > b {
		return HoleCards{a, b}, nil
	}
	return HoleCards{b, a}, nil
}

// ParseHoleCards parses notation such as "AcKd".
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("%w: got %d cards in %q", ErrHoleCards, len(cards), s)
	}
	return NewHoleCards(cards[0], cards[1])
}

// MustParseHoleCards parses hole cards and panics on error (for tests)
func MustParseHoleCards(s string) HoleCards {
	h, err := ParseHoleCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hole cards '%s': %v", s, err))
	}
	return h
}

// High returns the higher-indexed card.
func (h HoleCards) High() Card { return h[0] }

// Low returns the lower-indexed card.
func (h HoleCards) Low() Card { return h[1] }

// Slice returns the two cards as a slice view.
func (h *HoleCards) Slice() []Card { return h[:] }

// Paired reports whether both cards share a rank.
func (h HoleCards) Paired() bool { return h[0].Rank() == h[1].Rank() }

// Suited reports whether both cards share a suit.
func (h HoleCards) Suited() bool { return h[0].Suit() == h[1].Suit() }

// Index returns the position of h in the enumeration of all 1326 combinations,
// where combinations are generated by ascending low card, then ascending high card.
func (h HoleCards) Index() int {
	lo := h[1].Index()
	hi := h[0].Index()
	offset := NumCards*lo - lo*(lo+1)/2
	return offset + (hi - lo - 1)
}

// PreflopIndex maps the hand onto one of the 169 starting-hand classes.
// Pairs occupy 0-12 by rank; unpaired hands follow, suited before offsuit.
func (h HoleCards) PreflopIndex() int {
	r1 := int(h[0].Rank())
	r2 := int(h[1].Rank())
	if r1 == r2 {
		return r1
	}

	n := r1 - 1
	offset := n * (n + 1) / 2
	idx := 13 + 2*(offset+r2)
	if !h.Suited() {
		idx++
	}
	return idx
}

// Category returns the reduced starting-hand form: "AA", "AKs" or "AKo".
func (h HoleCards) Category() string {
	hi := rankChars[h[0].Rank()]
	lo := rankChars[h[1].Rank()]
	switch {
	case h.Paired():
		return string([]byte{hi, lo})
	case h.Suited():
		return string([]byte{hi, lo, 's'})
	default:
		return string([]byte{hi, lo, 'o'})
	}
}

// String renders the hole cards, higher card first.
func (h HoleCards) String() string {
	return h[0].String() + h[1].String()
}
