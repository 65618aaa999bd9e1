package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHoleCardsCanonical(t *testing.T) {
	t.Parallel()
	a := MustParseCard("2c")
	b := MustParseCard("Ah")

	h1, err := NewHoleCards(a, b)
	require.NoError(t, err)
	h2, err := NewHoleCards(b, a)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, b, h1.High())
	assert.Equal(t, a, h1.Low())
	assert.Equal(t, "Ah2c", h1.String())

	_, err = NewHoleCards(a, a)
	assert.True(t, errors.Is(err, ErrHoleCards))
}

func TestParseHoleCardsErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"As", "AsKsQs", "AsAs", "Xx2c", ""} {
		_, err := ParseHoleCards(input)
		assert.Error(t, err, input)
	}
}

func TestHoleCardsIndexIsPerfect(t *testing.T) {
	t.Parallel()
	seen := make([]bool, NumHoleCards)
	expected := 0
	// Enumerate by ascending low card, then ascending high card.
	for lo := range NumCards {
		for hi := lo + 1; hi < NumCards; hi++ {
			h, err := NewHoleCards(CardFromIndex(lo), CardFromIndex(hi))
			require.NoError(t, err)
			idx := h.Index()
			require.Equal(t, expected, idx, "hole cards %s", h)
			require.False(t, seen[idx])
			seen[idx] = true
			expected++
		}
	}
	assert.Equal(t, NumHoleCards, expected)
	assert.Equal(t, 0, MustParseHoleCards("2c2d").Index())
	assert.Equal(t, NumHoleCards-1, MustParseHoleCards("AhAs").Index())
}

func TestPreflopIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hole     string
		want     int
		category string
	}{
		{"2c2d", 0, "22"},
		{"AsAh", 12, "AA"},
		{"3s2s", 13, "32s"},
		{"3s2h", 14, "32o"},
		{"AsKs", 167, "AKs"},
		{"AsKd", 168, "AKo"},
		{"7h2c", 34, "72o"},
	}
	for _, tt := range tests {
		t.Run(tt.hole, func(t *testing.T) {
			t.Parallel()
			h := MustParseHoleCards(tt.hole)
			assert.Equal(t, tt.want, h.PreflopIndex())
			assert.Equal(t, tt.category, h.Category())
		})
	}
}

func TestPreflopIndexCoversAllClasses(t *testing.T) {
	t.Parallel()
	counts := make([]int, NumPreflopClasses)
	for lo := range NumCards {
		for hi := lo + 1; hi < NumCards; hi++ {
			h, err := NewHoleCards(CardFromIndex(lo), CardFromIndex(hi))
			require.NoError(t, err)
			idx := h.PreflopIndex()
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, NumPreflopClasses)
			counts[idx]++
		}
	}
	for idx, n := range counts {
		h := PreflopRepresentative(idx)
		switch {
		case h.Paired():
			assert.Equal(t, 6, n, "pair class %s", h.Category())
		case h.Suited():
			assert.Equal(t, 4, n, "suited class %s", h.Category())
		default:
			assert.Equal(t, 12, n, "offsuit class %s", h.Category())
		}
	}
}
