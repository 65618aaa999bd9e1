package poker

import (
	"math/bits"
)

// HandRank is the strength of a five to seven card hand. Higher values are
// stronger. The hand type occupies bits 20 and up; the low 20 bits hold up to
// five tie-breaking ranks, four bits each, most significant first.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	typeShift  = 20
	detailMask = 1<<typeShift - 1
)

var handTypeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// Type returns the type of hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	return HandType(hr >> typeShift)
}

// Detail returns the tie-breaking part of the rank within its type.
func (hr HandRank) Detail() uint32 {
	return uint32(hr & detailMask)
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	return hr.Type().String()
}

// Strength is an opaque, totally ordered hand value. Higher is stronger and
// equal values tie. Only values produced by the same Ranker are comparable.
type Strength int32

// Ranker ranks a five to seven card hand.
type Ranker interface {
	Rank(h *Hand) Strength
}

// Evaluator is the built-in bitmask hand evaluator.
type Evaluator struct{}

// DefaultRanker is the ranker used when none is configured.
var DefaultRanker Ranker = Evaluator{}

// Rank implements Ranker.
func (Evaluator) Rank(h *Hand) Strength {
	return Strength(Evaluate(h))
}

// Evaluate returns the rank of the best five-card hand within h.
func Evaluate(h *Hand) HandRank {
	var suitMasks [4]uint16
	for _, c := range h.Cards() {
		suitMasks[c.Suit()] |= 1 << c.Rank()
	}
	return rankFromMasks(suitMasks)
}

// EvaluateCards evaluates between five and seven loose cards.
func EvaluateCards(cards ...Card) HandRank {
	var suitMasks [4]uint16
	for _, c := range cards {
		suitMasks[c.Suit()] |= 1 << c.Rank()
	}
	return rankFromMasks(suitMasks)
}

// packRanks encodes up to five ranks as nibbles, most significant first.
// Ranks are stored as rank+1 so that a missing kicker sorts below a deuce.
func packRanks(t HandType, ranks uint64, n int) HandRank {
	detail := uint32(0)
	for i := 0; i < 5; i++ {
		detail <<= 4
		if i < n {
			detail |= uint32(ranks>>(8*i)&0xFF) + 1
		}
	}
	return HandRank(uint32(t)<<typeShift | detail)
}

func rankFromMasks(suitMasks [4]uint16) HandRank {
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	rankMask := s0 | s1 | s2 | s3

	// Flushes first; with at most seven cards only one suit can hold five.
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) >= 5 {
			if high, ok := straightHigh(suitMask); ok {
				return packRanks(StraightFlush, uint64(high), 1)
			}
			top, n := topRanks(suitMask, 0, 0, 5)
			return packRanks(Flush, top, n)
		}
	}

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		ranks, n := topRanks(rankMask&^(1<<quad), uint64(quad), 1, 1)
		return packRanks(FourOfAKind, ranks, n+1)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return packRanks(FullHouse, uint64(trip)|uint64(pair)<<8, 2)
		}
	}

	if high, ok := straightHigh(rankMask); ok {
		return packRanks(Straight, uint64(high), 1)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		ranks, n := topRanks(rankMask&^(1<<trip), uint64(trip), 1, 2)
		return packRanks(ThreeOfAKind, ranks, n+1)
	}

	if high := highestRank(pairsMask); high >= 0 {
		if low := highestRank(pairsMask &^ (1 << high)); low >= 0 {
			used := uint16(1)<<high | uint16(1)<<low
			ranks, n := topRanks(rankMask&^used, uint64(high)|uint64(low)<<8, 2, 1)
			return packRanks(TwoPair, ranks, n+2)
		}
		ranks, n := topRanks(rankMask&^(1<<high), uint64(high), 1, 3)
		return packRanks(Pair, ranks, n+1)
	}

	top, n := topRanks(rankMask, 0, 0, 5)
	return packRanks(HighCard, top, n)
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topRanks adds up to n of the highest ranks in mask, in descending order,
// after the used ranks already byte-packed into prefix. It returns the packed
// ranks and how many were added.
func topRanks(mask uint16, prefix uint64, used, n int) (uint64, int) {
	packed := prefix
	added := 0
	for added < n && mask != 0 {
		top := bits.Len16(mask) - 1
		packed |= uint64(top) << (8 * (used + added))
		mask &^= 1 << top
		added++
	}
	return packed, added
}

const wheelMask = 0x100F // A-2-3-4-5

// straightHigh returns the top rank of the best straight in mask. The wheel
// reports Five as its top card.
func straightHigh(mask uint16) (uint8, bool) {
	run := mask & (mask << 1) & (mask << 2) & (mask << 3) & (mask << 4)
	if run != 0 {
		return uint8(bits.Len16(run) - 1), true
	}
	if mask&wheelMask == wheelMask {
		return uint8(Five), true
	}
	return 0, false
}
