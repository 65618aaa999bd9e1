package equity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdthem/internal/randutil"
	"github.com/lox/holdthem/poker"
	"github.com/lox/holdthem/poker/hankin"
)

func holdings(t *testing.T, notation ...string) []poker.HoleCards {
	t.Helper()
	out := make([]poker.HoleCards, len(notation))
	for i, n := range notation {
		out[i] = poker.MustParseHoleCards(n)
	}
	return out
}

func TestSimulateErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sim := NewSimulator(WithSeed(1))
	hero := poker.MustParseHoleCards("AcAh")
	flop := poker.MustParseBoard("3s7d8c")

	tests := []struct {
		name     string
		villains []poker.HoleCards
		board    poker.Board
		trials   int64
		want     error
	}{
		{"empty range", nil, flop, 100, ErrEmptyRange},
		{"fully blocked range", holdings(t, "AsAc", "3s2c", "8c8d"), flop, 100, ErrEmptyRange},
		{"negative trials", holdings(t, "KsKd"), flop, -1, ErrInvalidTrials},
		{"hero on board", holdings(t, "KsKd"), poker.MustParseBoard("Ac7d8c"), 100, ErrCardConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := sim.Simulate(ctx, hero, tt.villains, tt.board, tt.trials)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Zero(t, result.Trials())
		})
	}
}

func TestSimulateZeroTrials(t *testing.T) {
	t.Parallel()
	result, err := Simulate(poker.MustParseHoleCards("AcAh"), holdings(t, "KsKd"), poker.EmptyBoard, 0)
	require.NoError(t, err)
	assert.Zero(t, result.Trials())
	_, ok := result.WinFrac()
	assert.False(t, ok)
}

func TestSimulateCountsSumToTrials(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("AcAh")
	villains := AllHoleCards()

	for _, board := range []string{"", "3s7d8c", "3s7d8cKh", "3s7d8cKh2d"} {
		for _, workers := range []int{1, 3, 8} {
			sim := NewSimulator(WithSeed(11), WithWorkers(workers))
			result, err := sim.Simulate(context.Background(), hero, villains, poker.MustParseBoard(board), 5001)
			require.NoError(t, err)
			assert.Equal(t, int64(5001), result.Trials(), "board %q workers %d", board, workers)
		}
	}
}

func TestSimulateRiverIsExact(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("AsAh")
	board := poker.MustParseBoard("2c3d4h8s9c")

	result, err := Simulate(hero, holdings(t, "KsKh"), board, 1000)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Wins: 1000}, result)

	result, err = Simulate(hero, holdings(t, "AdAc"), board, 1000)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Ties: 1000}, result)

	result, err = Simulate(hero, holdings(t, "5s6d"), board, 1000)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Losses: 1000}, result)
}

func TestSimulateSeedIsReproducible(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("JhTh")
	board := poker.MustParseBoard("9h8c2d")
	villains := AllHoleCards()

	for _, workers := range []int{1, 4} {
		a, err := NewSimulator(WithSeed(99), WithWorkers(workers)).Simulate(context.Background(), hero, villains, board, 20000)
		require.NoError(t, err)
		b, err := NewSimulator(WithSeed(99), WithWorkers(workers)).Simulate(context.Background(), hero, villains, board, 20000)
		require.NoError(t, err)
		assert.Equal(t, a, b, "workers %d", workers)
	}
}

func TestSimulateKingsAgainstAcesOrDeuces(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("KdKh")
	villains := holdings(t, "AdAh", "2c2s")

	result, err := NewSimulator(WithSeed(1)).Simulate(context.Background(), hero, villains, poker.EmptyBoard, 10000)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Wins: 4867, Ties: 47, Losses: 5086}, result)

	// Roughly 18% against aces and 82% against deuces, each half the time.
	win, ok := result.WinFrac()
	require.True(t, ok)
	assert.InDelta(t, 0.49, win, 0.02)
}

func TestSimulateKnownMatchups(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hero     string
		villain  string
		board    string
		sampling Sampling
		equity   float64
	}{
		{"aces vs kings", "AsAh", "KsKh", "", SampleWithReplacement, 0.82},
		{"coin flip", "QsQh", "AdKc", "", SampleWithoutReplacement, 0.57},
		{"flush draw on the flop", "AhKh", "QsQd", "7h2h3c", SampleWithReplacement, 0.55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sim := NewSimulator(WithSeed(5), WithWorkers(2), WithSampling(tt.sampling))
			result, err := sim.Simulate(context.Background(), poker.MustParseHoleCards(tt.hero),
				holdings(t, tt.villain), poker.MustParseBoard(tt.board), 40000)
			require.NoError(t, err)
			assert.InDelta(t, tt.equity, result.Equity(), 0.02)

			lower, upper := result.ConfidenceInterval()
			assert.Less(t, lower, result.Equity())
			assert.Greater(t, upper, result.Equity())
		})
	}
}

func TestSimulateRangeIsFiltered(t *testing.T) {
	t.Parallel()
	// KsKd is the only live holding; the others share a card with the hero.
	hero := poker.MustParseHoleCards("AsAh")
	board := poker.MustParseBoard("2c3d4h8s9c")
	result, err := Simulate(hero, holdings(t, "AsKh", "AhQd", "KsKd"), board, 500)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Wins: 500}, result)
}

func TestSimulateWithoutReplacementVisitsRange(t *testing.T) {
	t.Parallel()
	// On the river each villain's result is fixed, so a full pass over the
	// range gives exact counts.
	hero := poker.MustParseHoleCards("AsAh")
	board := poker.MustParseBoard("2c3d4h8s9c")
	villains := holdings(t, "KsKd", "AdAc", "5s6d")

	sim := NewSimulator(WithSeed(3), WithSampling(SampleWithoutReplacement))
	result, err := sim.Simulate(context.Background(), hero, villains, board, 300)
	require.NoError(t, err)
	assert.Equal(t, SimulationResult{Wins: 100, Ties: 100, Losses: 100}, result)
}

func TestSimulateWithRand(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("8s8d")
	villains := holdings(t, "AhKc")

	a, err := NewSimulator(WithRand(randutil.New(7))).Simulate(context.Background(), hero, villains, poker.EmptyBoard, 3000)
	require.NoError(t, err)
	b, err := NewSimulator(WithRand(randutil.New(7))).Simulate(context.Background(), hero, villains, poker.EmptyBoard, 3000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateWithHankinRanker(t *testing.T) {
	t.Parallel()
	hero := poker.MustParseHoleCards("JhTh")
	board := poker.MustParseBoard("9h8c2d")
	villains := AllHoleCards()

	builtin, err := NewSimulator(WithSeed(21)).Simulate(context.Background(), hero, villains, board, 5000)
	require.NoError(t, err)
	alt, err := NewSimulator(WithSeed(21), WithRanker(hankin.Ranker{})).Simulate(context.Background(), hero, villains, board, 5000)
	require.NoError(t, err)
	// Same seed, same run-outs, equivalent rankings.
	assert.Equal(t, builtin, alt)
}

func TestSimulateCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulator(WithWorkers(2)).Simulate(ctx, poker.MustParseHoleCards("AsAh"), AllHoleCards(), poker.EmptyBoard, 100000)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSamplingNames(t *testing.T) {
	t.Parallel()
	for _, s := range []Sampling{SampleWithReplacement, SampleWithoutReplacement} {
		parsed, err := ParseSampling(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseSampling("stratified")
	assert.Error(t, err)
}

func BenchmarkSimulate(b *testing.B) {
	hero := poker.MustParseHoleCards("AcAh")
	board := poker.MustParseBoard("3s7d8c")
	villains := AllHoleCards()
	sim := NewSimulator(WithSeed(1))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = sim.Simulate(context.Background(), hero, villains, board, 1000)
	}
}
