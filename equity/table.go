package equity

import (
	"sync"

	"github.com/lox/holdthem/poker"
)

var (
	tableOnce    sync.Once
	allCards     [poker.NumCards]poker.Card
	allHoleCards [poker.NumHoleCards]poker.HoleCards
)

func buildTables() {
	for i := range allCards {
		allCards[i] = poker.CardFromIndex(i)
	}

	// Ascending low card, then ascending high card, which is the order
	// HoleCards.Index assumes.
	n := 0
	for lo := 0; lo < poker.NumCards; lo++ {
		for hi := lo + 1; hi < poker.NumCards; hi++ {
			allHoleCards[n] = poker.HoleCards{allCards[hi], allCards[lo]}
			n++
		}
	}
}

// AllCards returns the 52 cards in index order. The slice is shared and must
// not be modified.
func AllCards() []poker.Card {
	tableOnce.Do(buildTables)
	return allCards[:]
}

// AllHoleCards returns all 1326 two-card combinations such that
// AllHoleCards()[h.Index()] == h. The slice is shared and must not be modified.
func AllHoleCards() []poker.HoleCards {
	tableOnce.Do(buildTables)
	return allHoleCards[:]
}

// HoleCardsFromIndex is the inverse of HoleCards.Index. It panics when i is
// outside [0,1326).
func HoleCardsFromIndex(i int) poker.HoleCards {
	return AllHoleCards()[i]
}
