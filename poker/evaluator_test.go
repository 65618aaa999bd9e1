package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHandTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected HandType
	}{
		{"Royal Flush", "AsKsQsJsTs9h8h", StraightFlush},
		{"Straight Flush", "9s8s7s6s5s4h3h", StraightFlush},
		{"Steel Wheel", "As2s3s4s5sKhQd", StraightFlush},
		{"Four of a Kind", "AsAhAdAcKs2h3h", FourOfAKind},
		{"Full House", "AsAhAdKsKh2h3h", FullHouse},
		{"Full House from two trips", "AsAhAdKsKhKd3h", FullHouse},
		{"Flush", "AsKsQs8s6s4h3h", Flush},
		{"Six card flush", "AsKsQs8s6s4s3h", Flush},
		{"Straight", "AsKhQdJcTs9h8h", Straight},
		{"Wheel", "Ah2s3d4c5s9hKh", Straight},
		{"Three of a Kind", "AsAhAdKs9c7h5h", ThreeOfAKind},
		{"Two Pair", "AsAhKdKs9c7h5h", TwoPair},
		{"Three pairs", "AsAhKdKs9c9h5h", TwoPair},
		{"One Pair", "AsAhKdQs9c7h5h", Pair},
		{"High Card", "AsKhQd9s7c5h3h", HighCard},
		{"Five cards", "AsKhQd9s7c", HighCard},
		{"Six cards", "AsAhQd9s7c2d", Pair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rank := EvaluateCards(MustParseCards(tt.cards)...)
			if rank.Type() != tt.expected {
				t.Errorf("EvaluateCards(%s) = %s, want %s", tt.cards, rank.Type(), tt.expected)
			}
		})
	}
}

func TestHandComparison(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"flush beats straight", "2s5s7s9sKs3d4h", "6s7h8d9cTs2d3h"},
		{"higher kicker wins", "AsAhKd9c7h5d3c", "AdAcQd9h7s5c3d"},
		{"second kicker decides", "AsAhKdQc7h5d3c", "AdAcKhJd7s5c3d"},
		{"two pair kicker", "KsKhQdQc9h2d3c", "KdKcQhQs8h2c3d"},
		{"higher set", "8s8h8d2c4h9dKc", "7s7h7d2d4sTdAc"},
		{"full house by trips", "3s3h3d2c2h9dKc", "2s2d2hAcAhQdKs"},
		{"full house by pair", "KsKhKd3c3h9d2c", "KcKhKs2s2d9cTd"},
		{"six high straight beats wheel", "2s3h4d5c6s9dKc", "As2h3d4c5sJdKh"},
		{"quads kicker", "9s9h9d9cAh2d3c", "9s9h9d9cKh2d3c"},
		{"pair beats high card", "2s2hKdQc9h7d3c", "AsKhQdJc9h7d3c"},
		{"missing kicker ranks below a deuce", "AsKhQdJc9h", "AsKhQdJc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := EvaluateCards(MustParseCards(tt.stronger)...)
			w := EvaluateCards(MustParseCards(tt.weaker)...)
			assert.Greater(t, s, w, "%s (%s) should beat %s (%s)", tt.stronger, s, tt.weaker, w)
			assert.Equal(t, Win, Compare(Strength(s), Strength(w)))
			assert.Equal(t, Lose, Compare(Strength(w), Strength(s)))
		})
	}
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()
	board := MustParseBoard("AsKdQh7c2s")
	a := MakeHand(MustParseHoleCards("JcTd"), &board)
	b := MakeHand(MustParseHoleCards("JhTs"), &board)
	require.Equal(t, Straight, Evaluate(&a).Type())
	assert.Equal(t, Tie, Compare(Evaluator{}.Rank(&a), Evaluator{}.Rank(&b)))

	// Board plays: both kickers are below the board's fifth card.
	board = MustParseBoard("AsKdQhJc9s")
	c := MakeHand(MustParseHoleCards("3c2d"), &board)
	d := MakeHand(MustParseHoleCards("4h2s"), &board)
	assert.Equal(t, Tie, Compare(DefaultRanker.Rank(&c), DefaultRanker.Rank(&d)))
}

func TestEvaluateOrderMatchesPermutation(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		perm := rng.Perm(NumCards)[:7]
		cards := make([]Card, len(perm))
		for i, p := range perm {
			cards[i] = CardFromIndex(p)
		}
		want := EvaluateCards(cards...)
		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		require.Equal(t, want, EvaluateCards(cards...), FormatCards(cards))
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Win, Compare(10, 3))
	assert.Equal(t, Lose, Compare(3, 10))
	assert.Equal(t, Tie, Compare(7, 7))
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "tie", Tie.String())
	assert.Equal(t, "lose", Lose.String())
}

func BenchmarkEvaluate7(b *testing.B) {
	board := MustParseBoard("Kd9h4c2s3d")
	hand := MakeHand(MustParseHoleCards("AsKs"), &board)
	b.ReportAllocs()
	for b.Loop() {
		_ = Evaluate(&hand)
	}
}
