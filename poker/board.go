package poker

import (
	"errors"
	"fmt"
)

// Street identifies how many community cards have been revealed.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// ErrBoardSize is returned for boards that do not hold 0, 3, 4 or 5 cards.
var ErrBoardSize = errors.New("board must have 0, 3, 4 or 5 cards")

var streetNames = [...]string{"preflop", "flop", "turn", "river"}

func (s Street) String() string {
	if int(s) < len(streetNames) {
		return streetNames[s]
	}
	return "unknown"
}

// Len returns the number of board cards on this street.
func (s Street) Len() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// Missing returns how many cards remain to be dealt to complete the board.
func (s Street) Missing() int {
	return 5 - s.Len()
}

// Board holds the community cards. The street tags how many of the fixed
// slots are in use; the zero value is the empty (preflop) board.
type Board struct {
	street Street
	cards  [5]Card
}

// EmptyBoard is the board before the flop.
var EmptyBoard = Board{}

// NewBoard builds a board from 0, 3, 4 or 5 distinct cards.
func NewBoard(cards ...Card) (Board, error) {
	street, ok := streetForLen(len(cards))
	if !ok {
		return Board{}, fmt.Errorf("%w: got %d", ErrBoardSize, len(cards))
	}
	b := Board{street: street}

	var seen CardSet
	for i, c := range cards {
		if !c.Valid() {
			return Board{}, fmt.Errorf("%w: index %d out of range", ErrInvalidCard, c)
		}
		if seen.Contains(c) {
			return Board{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Insert(c)
		b.cards[i] = c
	}
	return b, nil
}

func streetForLen(n int) (Street, bool) {
	switch n {
	case 0:
		return Preflop, true
	case 3:
		return Flop, true
	case 4:
		return Turn, true
	case 5:
		return River, true
	}
	return 0, false
}

// ParseBoard parses notation such as "3s7d8c"; the empty string is the empty board.
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// MustParseBoard parses a board and panics on error (for tests)
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse board '%s': %v", s, err))
	}
	return b
}

// Street returns which street the board represents.
func (b Board) Street() Street { return b.street }

// Len returns the number of cards on the board.
func (b Board) Len() int { return b.street.Len() }

// IsEmpty reports whether no community cards are known.
func (b Board) IsEmpty() bool { return b.street == Preflop }

// Cards returns a view of the board cards sized to the street.
func (b *Board) Cards() []Card {
	return b.cards[:b.street.Len()]
}

// Set returns the board cards as a CardSet.
func (b Board) Set() CardSet {
	return NewCardSet(b.Cards()...)
}

func (b Board) String() string {
	return FormatCards(b.Cards())
}

// Extend returns the board with cards dealt onto it. The new cards are not
// checked against the existing ones; callers deal them from a deck that
// already excludes the board.
func (b Board) Extend(cards ...Card) (Board, error) {
	n := b.street.Len()
	street, ok := streetForLen(n + len(cards))
	if !ok {
		return b, fmt.Errorf("%w: cannot deal %d onto %s", ErrBoardSize, len(cards), b.street)
	}
	copy(b.cards[n:], cards)
	b.street = street
	return b, nil
}
