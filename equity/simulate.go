// Package equity estimates how a Texas Hold'em starting hand fares against a
// range of opponent holdings: exact classification of the current board, Monte
// Carlo simulation of the run-out, and the flat feature record built from both.
package equity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdthem/internal/randutil"
	"github.com/lox/holdthem/poker"
)

// Sampling selects how opponent holdings are drawn from the range.
type Sampling uint8

const (
	// SampleWithReplacement picks a uniformly random holding every trial.
	SampleWithReplacement Sampling = iota
	// SampleWithoutReplacement walks a shuffled copy of the range and
	// reshuffles once every holding has been used.
	SampleWithoutReplacement
)

func (s Sampling) String() string {
	if s == SampleWithoutReplacement {
		return "without-replacement"
	}
	return "with-replacement"
}

// ParseSampling parses the names produced by Sampling.String.
func ParseSampling(name string) (Sampling, error) {
	switch name {
	case "", "with-replacement":
		return SampleWithReplacement, nil
	case "without-replacement":
		return SampleWithoutReplacement, nil
	}
	return 0, fmt.Errorf("unknown sampling %q", name)
}

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 4096

// Option configures a Simulator
type Option func(*Simulator)

// WithRanker sets the hand ranking used at showdown.
func WithRanker(r poker.Ranker) Option {
	return func(s *Simulator) {
		if r != nil {
			s.ranker = r
		}
	}
}

// WithRand draws all randomness from rng. Such a simulator must not be used
// from more than one goroutine at a time.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// WithSeed makes every run reproducible: the same seed and inputs give the
// same counts regardless of scheduling.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
		s.rng = nil
	}
}

// WithWorkers splits trials across n goroutines. Values below 1 use one
// worker per CPU, capped at 8.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			n = min(runtime.NumCPU(), 8)
		}
		s.workers = n
	}
}

// WithSampling sets the opponent sampling policy.
func WithSampling(p Sampling) Option {
	return func(s *Simulator) {
		s.sampling = p
	}
}

// WithLogger sets a custom logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// Simulator runs Monte Carlo showdowns of a hero hand against a range.
type Simulator struct {
	ranker   poker.Ranker
	rng      *rand.Rand
	seed     int64
	seeded   bool
	workers  int
	sampling Sampling
	logger   zerolog.Logger
}

// NewSimulator creates a simulator. Without options it uses the built-in
// evaluator, one worker, sampling with replacement and a random seed.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		ranker:  poker.DefaultRanker,
		workers: 1,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ranker returns the ranking the simulator uses at showdown.
func (s *Simulator) Ranker() poker.Ranker { return s.ranker }

// Simulate is NewSimulator().Simulate with a background context.
func Simulate(hero poker.HoleCards, villains []poker.HoleCards, board poker.Board, trials int64) (SimulationResult, error) {
	return NewSimulator().Simulate(context.Background(), hero, villains, board, trials)
}

// Simulate plays trials showdowns. Each trial picks an opponent holding from
// villains, deals the rest of the board around both hands and compares the
// finished hands. Holdings that share a card with the hero or the board are
// dropped from the range first.
func (s *Simulator) Simulate(ctx context.Context, hero poker.HoleCards, villains []poker.HoleCards, board poker.Board, trials int64) (SimulationResult, error) {
	if trials < 0 {
		return SimulationResult{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	dead := poker.DeadCards(hero, board)
	if dead.Len() != 2+board.Len() {
		return SimulationResult{}, fmt.Errorf("%w: %s on %s", ErrCardConflict, hero, board.String())
	}

	if len(villains) == 0 {
		return SimulationResult{}, ErrEmptyRange
	}
	live := make([]poker.HoleCards, 0, len(villains))
	for _, v := range villains {
		if !dead.Intersects(v) {
			live = append(live, v)
		}
	}
	if len(live) == 0 {
		return SimulationResult{}, fmt.Errorf("%w: %d holdings given, all blocked by %s %s",
			ErrEmptyRange, len(villains), hero, board.String())
	}
	if trials == 0 {
		return SimulationResult{}, nil
	}

	workers := int64(max(s.workers, 1))
	workers = min(workers, trials)
	streams := s.streams(int(workers))

	results := make([]SimulationResult, workers)
	g, gctx := errgroup.WithContext(ctx)
	perWorker := trials / workers
	remainder := trials % workers
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder trials
		}
		rng := streams[w]
		g.Go(func() error {
			r, err := s.run(gctx, hero, live, board, dead, n, rng)
			results[w] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationResult{}, err
	}

	var total SimulationResult
	for _, r := range results {
		total.add(r)
	}

	s.logger.Debug().
		Str("hero", hero.String()).
		Str("board", board.String()).
		Int("range", len(live)).
		Int("blocked", len(villains)-len(live)).
		Int64("workers", workers).
		Str("sampling", s.sampling.String()).
		Int64("wins", total.Wins).
		Int64("ties", total.Ties).
		Int64("losses", total.Losses).
		Msg("Simulation complete")

	return total, nil
}

// streams returns one RNG per worker. A caller-supplied RNG is used directly
// by a single worker, otherwise it seeds the worker streams.
func (s *Simulator) streams(workers int) []*rand.Rand {
	out := make([]*rand.Rand, workers)
	if s.rng != nil && workers == 1 {
		out[0] = s.rng
		return out
	}

	base := s.seed
	switch {
	case s.rng != nil:
		base = s.rng.Int64()
	case !s.seeded:
		base = randutil.Entropy()
	}
	for w := range out {
		out[w] = randutil.New(randutil.Derive(base, w))
	}
	return out
}

// derive returns a copy of the simulator drawing from the n-th stream of its
// seed, so that concurrent simulations stay independent and reproducible.
func (s *Simulator) derive(n int) *Simulator {
	c := *s
	switch {
	case s.rng != nil:
		c.seed = s.rng.Int64()
	case !s.seeded:
		c.seed = randutil.Entropy()
	default:
		c.seed = randutil.Derive(s.seed, n)
	}
	c.seeded = true
	c.rng = nil
	return &c
}

// run is the per-worker trial loop. It allocates nothing per trial.
func (s *Simulator) run(ctx context.Context, hero poker.HoleCards, villains []poker.HoleCards,
	board poker.Board, dead poker.CardSet, trials int64, rng *rand.Rand) (SimulationResult, error) {

	var result SimulationResult
	deck := NewFastDrawDeck(dead, rng)
	pick := newSampler(s.sampling, villains, rng)
	missing := board.Street().Missing()

	var heroHand, villainHand poker.Hand
	for i := int64(0); i < trials; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		villain := pick.next()
		drawn, err := deck.Draw(missing, poker.NewCardSet(villain[0], villain[1]))
		if err != nil {
			return result, err
		}
		river, err := drawn.Complete(board)
		if err != nil {
			return result, err
		}

		heroHand = poker.MakeHand(hero, &river)
		villainHand = poker.MakeHand(villain, &river)
		result.record(poker.Compare(s.ranker.Rank(&heroHand), s.ranker.Rank(&villainHand)))
	}
	return result, nil
}

type sampler struct {
	policy Sampling
	hands  []poker.HoleCards
	pos    int
	rng    *rand.Rand
}

func newSampler(policy Sampling, hands []poker.HoleCards, rng *rand.Rand) *sampler {
	sp := &sampler{policy: policy, hands: hands, rng: rng}
	if policy == SampleWithoutReplacement {
		// Each worker shuffles its own copy.
		sp.hands = append([]poker.HoleCards(nil), hands...)
		sp.pos = len(sp.hands)
	}
	return sp
}

func (sp *sampler) next() poker.HoleCards {
	if sp.policy == SampleWithReplacement {
		return sp.hands[sp.rng.IntN(len(sp.hands))]
	}
	if sp.pos >= len(sp.hands) {
		sp.rng.Shuffle(len(sp.hands), func(i, j int) {
			sp.hands[i], sp.hands[j] = sp.hands[j], sp.hands[i]
		})
		sp.pos = 0
	}
	h := sp.hands[sp.pos]
	sp.pos++
	return h
}
