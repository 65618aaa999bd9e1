package equity

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/holdthem/poker"
)

// FastDrawDeck deals board run-outs for many trials from one shuffle. It holds
// the live cards (everything not dead) and reshuffles only when the cursor
// runs off the end, so most trials cost a few array reads instead of a
// shuffle. A new deck starts exhausted, so the first draw shuffles.
//
// A FastDrawDeck is owned by one goroutine.
type FastDrawDeck struct {
	cards [poker.NumCards]poker.Card
	live  poker.CardSet
	n     int
	next  int
	rng   *rand.Rand
}

// NewFastDrawDeck builds a deck of every card not in dead.
func NewFastDrawDeck(dead poker.CardSet, rng *rand.Rand) *FastDrawDeck {
	d := &FastDrawDeck{rng: rng}
	for _, c := range AllCards() {
		if dead.Contains(c) {
			continue
		}
		d.cards[d.n] = c
		d.live.Insert(c)
		d.n++
	}
	d.next = d.n
	return d
}

// Len returns the number of live cards in the deck.
func (d *FastDrawDeck) Len() int { return d.n }

// Shuffle shuffles the live cards using Fisher-Yates and rewinds the cursor.
func (d *FastDrawDeck) Shuffle() {
	d.next = 0
	for i := d.n - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw takes n cards that are not in skip, reshuffling whenever the end of
// the deck is reached. n must be the number of cards some street is missing:
// 0, 1, 2 or 5.
func (d *FastDrawDeck) Draw(n int, skip poker.CardSet) (Drawn, error) {
	var out Drawn
	switch n {
	case 0:
		return out, nil
	case 1, 2, 5:
	default:
		return out, fmt.Errorf("%w: cannot draw %d cards", ErrDrawMismatch, n)
	}
	if available := (d.live &^ skip).Len(); available < n {
		return out, fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, available)
	}

	for int(out.n) < n {
		if d.next >= d.n {
			d.Shuffle()
		}
		c := d.cards[d.next]
		d.next++
		if skip.Contains(c) {
			continue
		}
		skip.Insert(c)
		out.cards[out.n] = c
		out.n++
	}
	return out, nil
}

// Drawn is the result of one FastDrawDeck.Draw: up to five cards held inline.
type Drawn struct {
	cards [5]poker.Card
	n     uint8
}

// Len returns the number of drawn cards.
func (d *Drawn) Len() int { return int(d.n) }

// Cards returns a view of the drawn cards.
func (d *Drawn) Cards() []poker.Card { return d.cards[:d.n] }

// Complete deals the drawn cards onto board, producing a river. The draw must
// be exactly what the board is missing.
func (d *Drawn) Complete(board poker.Board) (poker.Board, error) {
	if want := board.Street().Missing(); int(d.n) != want {
		return poker.Board{}, fmt.Errorf("%w: drew %d for a %s board that needs %d",
			ErrDrawMismatch, d.n, board.Street(), want)
	}
	return board.Extend(d.cards[:d.n]...)
}
