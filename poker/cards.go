package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Card is a single playing card stored as its index in [0,52).
// Layout: index = rank*4 + suit, so ordering by index orders by rank first.
type Card uint8

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// NumCards is the size of the card universe.
const NumCards = 52

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var (
	// ErrInvalidCard is returned for malformed card notation.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the same card appears twice in one hand or board.
	ErrDuplicateCard = errors.New("duplicate card")
)

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(rank*4 + suit)
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return Card(i)
}

// Index returns the card's position in [0,52), used as array and bit offset.
func (c Card) Index() int {
	return int(c)
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	return uint8(c) / 4
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	return uint8(c) % 4
}

// Valid reports whether the card lies inside the 52-card universe.
func (c Card) Valid() bool {
	return c < NumCards
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return 0, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests and tables).
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", s, err))
	}
	return c
}

// ParseCards parses concatenated card notation such as "AcAh3s4s5s".
// Spaces are ignored. Duplicate cards are rejected.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is not even", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	var seen CardSet
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Insert(card)
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins card notation without separators.
func FormatCards(cards []Card) string {
	var sb strings.Builder
	sb.Grow(len(cards) * 2)
	for _, c := range cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, c)
	}
}

func parseSuit(c byte) (uint8, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, c)
	}
}
