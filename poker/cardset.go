package poker

import "math/bits"

// CardSet is a bitmap over the card index space: bit i is set when the card
// with index i is a member.
type CardSet uint64

// NewCardSet creates a CardSet from any number of cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Insert(c)
	}
	return cs
}

// DeadCards returns the set of cards already accounted for by the hero's
// hole cards and the board.
func DeadCards(hole HoleCards, board Board) CardSet {
	cs := NewCardSet(hole[0], hole[1])
	for _, c := range board.Cards() {
		cs.Insert(c)
	}
	return cs
}

func cardBit(c Card) CardSet {
	return CardSet(1) << c
}

// Insert adds a card to the set
func (cs *CardSet) Insert(c Card) {
	*cs |= cardBit(c)
}

// Remove deletes a card from the set
func (cs *CardSet) Remove(c Card) {
	*cs &^= cardBit(c)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c Card) bool {
	return cs&cardBit(c) != 0
}

// Intersects reports whether either of the hole cards is a member.
func (cs CardSet) Intersects(h HoleCards) bool {
	return cs&(cardBit(h[0])|cardBit(h[1])) != 0
}

// Union returns the cards present in either set.
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards lists the members in index order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(rest)))
	}
	return cards
}
