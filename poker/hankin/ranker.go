// Package hankin adapts github.com/paulhankin/poker to the poker.Ranker
// interface. It is an alternative to the built-in bitmask evaluator and is
// mostly useful for cross-checking it.
package hankin

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/holdthem/poker"
)

// Name identifies this ranker in configuration and cache keys.
const Name = "hankin"

var cardTable [poker.NumCards]ph.Card

func init() {
	suits := [4]ph.Suit{ph.Club, ph.Diamond, ph.Heart, ph.Spade}
	for i := range poker.NumCards {
		c := poker.CardFromIndex(i)
		// The library numbers ranks 1-13 with the ace low.
		r := ph.Rank(c.Rank() + 2)
		if c.Rank() == poker.Ace {
			r = 1
		}
		card, err := ph.MakeCard(suits[c.Suit()], r)
		if err != nil {
			panic(fmt.Sprintf("hankin: mapping %s: %v", c, err))
		}
		cardTable[i] = card
	}
}

// Convert maps a card onto the library's representation.
func Convert(c poker.Card) ph.Card {
	return cardTable[c.Index()]
}

// Ranker ranks hands with paulhankin/poker. Higher library scores are
// stronger, which matches poker.Strength. Hands must hold distinct cards; see
// poker.Hand.Distinct.
type Ranker struct{}

var _ poker.Ranker = Ranker{}

// Rank implements poker.Ranker.
func (Ranker) Rank(h *poker.Hand) poker.Strength {
	cards := h.Cards()
	switch len(cards) {
	case 7:
		var a7 [7]ph.Card
		for i, c := range cards {
			a7[i] = cardTable[c]
		}
		return poker.Strength(ph.Eval7(&a7))
	case 5:
		var a5 [5]ph.Card
		for i, c := range cards {
			a5[i] = cardTable[c]
		}
		return poker.Strength(ph.Eval5(&a5))
	case 6:
		return poker.Strength(bestOfFive(cards))
	default:
		// Fewer than five distinct cards only arise for impossible
		// holdings, which rank below every real hand.
		return minStrength
	}
}

const minStrength = poker.Strength(-1 << 15)

// bestOfFive scores a six card hand as its best five card subset.
func bestOfFive(cards []poker.Card) int16 {
	best := int16(-1 << 15)
	var five [5]ph.Card
	for skip := range cards {
		j := 0
		for i, c := range cards {
			if i == skip {
				continue
			}
			if j == len(five) {
				break
			}
			five[j] = cardTable[c]
			j++
		}
		if score := ph.Eval5(&five); score > best {
			best = score
		}
	}
	return best
}

// Describe returns the library's human-readable description of the hand,
// for example "pair of aces".
func Describe(h *poker.Hand) (string, error) {
	cards := h.Cards()
	converted := make([]ph.Card, len(cards))
	for i, c := range cards {
		converted[i] = cardTable[c]
	}
	return ph.Describe(converted)
}
