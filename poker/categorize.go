package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(h HoleCards) HoleCardCategory {
	big := h.High().Rank()
	small := h.Low().Rank()
	if small > big {
		small, big = big, small
	}
	suited := h.Suited()
	paired := h.Paired()

	switch {
	case paired && small >= Jack:
		return CategoryPremium
	case big == Ace && small == King:
		return CategoryPremium
	case paired && small == Ten:
		return CategoryStrong
	case big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case paired && small >= Seven:
		return CategoryMedium
	case suited && small >= Ten:
		return CategoryMedium
	case paired:
		return CategoryWeak
	case suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// CategoryForPreflopIndex categorises a representative of one of the 169
// starting-hand classes.
func CategoryForPreflopIndex(idx int) HoleCardCategory {
	return CategorizeHoleCards(PreflopRepresentative(idx))
}

// PreflopRepresentative returns a concrete hand for a preflop class index:
// spades for the high card and, for offsuit classes, hearts for the low card.
// It panics on indexes outside [0,169).
func PreflopRepresentative(idx int) HoleCards {
	if idx < 0 || idx >= NumPreflopClasses {
		panic("poker: preflop index out of range")
	}
	if idx < 13 {
		r := uint8(idx)
		return HoleCards{NewCard(r, Spades), NewCard(r, Hearts)}
	}
	k := (idx - 13) / 2
	suited := (idx-13)%2 == 0
	n := 0
	for (n+1)*(n+2)/2 <= k {
		n++
	}
	high := uint8(n + 1)
	low := uint8(k - n*(n+1)/2)
	lowSuit := Hearts
	if suited {
		lowSuit = Spades
	}
	return HoleCards{NewCard(high, Spades), NewCard(low, lowSuit)}
}
