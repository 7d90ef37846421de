package simulator

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"blackjack/game"
	"blackjack/simulator/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrInvalidParameter reports a request the engine refuses to simulate.
var ErrInvalidParameter = errors.New("invalid parameter")

// Request is one simulation call: the table state plus the trial budget.
// It is owned by a single Simulate call and never mutated.
type Request struct {
	PlayerCards []game.Rank
	DealerCard  game.Rank
	NumDecks    int
	BetSize     float64
	NumTrials   int
}

func (r Request) Validate() error {
	if len(r.PlayerCards) < 2 || len(r.PlayerCards) > 8 {
		return fmt.Errorf("%w: player hand must have 2 to 8 cards, got %d", ErrInvalidParameter, len(r.PlayerCards))
	}
	for _, c := range r.PlayerCards {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid player card %d", ErrInvalidParameter, int(c))
		}
	}
	if !r.DealerCard.Valid() {
		return fmt.Errorf("%w: invalid dealer card %d", ErrInvalidParameter, int(r.DealerCard))
	}
	if r.NumDecks < 1 {
		return fmt.Errorf("%w: numDecks must be at least 1, got %d", ErrInvalidParameter, r.NumDecks)
	}
	if r.BetSize < 0 {
		return fmt.Errorf("%w: betSize must not be negative, got %f", ErrInvalidParameter, r.BetSize)
	}
	if r.NumTrials < 0 {
		return fmt.Errorf("%w: numTrials must not be negative, got %d", ErrInvalidParameter, r.NumTrials)
	}
	return nil
}

// Result maps every applicable action to its statistics. The split
// entries are nil unless the player holds a pair.
type Result struct {
	Stand          Stats  `json:"stand"`
	HitOnce        Stats  `json:"hit_once"`
	HitTwice       Stats  `json:"hit_twice"`
	HitThrice      Stats  `json:"hit_thrice"`
	SplitHitOnce   *Stats `json:"split_hit_once,omitempty"`
	SplitHitTwice  *Stats `json:"split_hit_twice,omitempty"`
	SplitHitThrice *Stats `json:"split_hit_thrice,omitempty"`
}

// Get returns the statistics for an action and whether the result holds
// that action at all.
func (r Result) Get(a Action) (Stats, bool) {
	switch a {
	case Stand:
		return r.Stand, true
	case HitOnce:
		return r.HitOnce, true
	case HitTwice:
		return r.HitTwice, true
	case HitThrice:
		return r.HitThrice, true
	case SplitHitOnce:
		if r.SplitHitOnce != nil {
			return *r.SplitHitOnce, true
		}
	case SplitHitTwice:
		if r.SplitHitTwice != nil {
			return *r.SplitHitTwice, true
		}
	case SplitHitThrice:
		if r.SplitHitThrice != nil {
			return *r.SplitHitThrice, true
		}
	}
	return Stats{}, false
}

// Best returns the action with the highest estimated value among those
// present. Ties keep the earlier action, so an all-zero result yields
// Stand.
func (r Result) Best() (Action, Stats) {
	best := Stand
	bestStats := r.Stand
	for a := Stand; a < NumActions; a++ {
		stats, ok := r.Get(a)
		if ok && stats.EstimatedValue > bestStats.EstimatedValue {
			best = a
			bestStats = stats
		}
	}
	return best, bestStats
}

type Option func(s *Simulator)

// WithDealerHitsSoft17 switches the dealer to the hit-soft-17 house rule.
// The default stands on any 17.
func WithDealerHitsSoft17() Option {
	return func(s *Simulator) {
		s.rule = game.HitSoft17
	}
}

// WithSeed fixes the base seed of the per-task random streams, making
// runs reproducible. Without it every run reseeds from the clock.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

// Simulator is the Monte Carlo aggregator. It is stateless between
// Simulate calls and safe to reuse; each call owns its request.
type Simulator struct {
	workers int
	rule    game.Soft17Rule
	seed    uint64
	seeded  bool
	metrics metrics.Collector
}

func New(workers int, options ...Option) *Simulator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s := &Simulator{ // Default values
		workers: workers,
		rule:    game.StandSoft17,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// trialChunk is the batch size handed to a worker per task. Large enough
// to amortize channel traffic over the hot trial loop, small enough to
// balance load across workers.
const trialChunk = 4096

// task is one unit of parallel work: a batch of trials for one action,
// with its own random stream.
type task struct {
	action Action
	trials int
	stream uint64
}

// Simulate runs numTrials independent trials for every applicable action
// and aggregates them into per-action statistics. The work is fanned out
// over the worker pool; each worker keeps local tallies that are merged
// by summation after all workers finish.
func (s *Simulator) Simulate(req Request) (Result, metrics.RunMetric, error) {
	err := req.Validate()
	if err != nil {
		return Result{}, metrics.RunMetric{}, err
	}

	actions := ActionsFor(req.PlayerCards)
	shoe := buildShoe(req)
	s.metrics.Start(s.workers, len(actions))

	seed := s.seed
	if !s.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	// Chunk the trial budget per action into tasks
	chunksPerAction := (req.NumTrials + trialChunk - 1) / trialChunk
	tasks := make(chan task, len(actions)*chunksPerAction)
	stream := uint64(0)
	for _, a := range actions {
		remaining := req.NumTrials
		for remaining > 0 {
			n := remaining
			if n > trialChunk {
				n = trialChunk
			}
			tasks <- task{action: a, trials: n, stream: stream}
			stream++
			remaining -= n
		}
	}
	close(tasks)

	tallies := make([][NumActions]tally, s.workers)
	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			local := &tallies[worker]
			for t := range tasks {
				// Each task gets an independent generator stream: no
				// contention between workers, no correlated sequences,
				// and reproducible runs under a fixed seed regardless of
				// which worker picks the task up.
				rng := rand.New(rand.NewSource(seed + t.stream))
				draw := func() game.Rank { return shoe.Draw(rng) }
				for j := 0; j < t.trials; j++ {
					local[t.action].add(runTrial(draw, req.PlayerCards, req.DealerCard, t.action, s.rule))
				}
				s.metrics.AddTrials(t.trials)
			}
		}(i)
	}
	wg.Wait()

	// Merge the per-worker tallies; summation commutes, so order is
	// irrelevant.
	var merged [NumActions]tally
	for i := range tallies {
		for a := range merged {
			merged[a].merge(tallies[i][a])
		}
	}

	result := buildResult(merged, req.BetSize, CanSplit(req.PlayerCards))
	metric := s.metrics.Complete()
	log.Debug().
		Int("workers", s.workers).
		Int("actions", len(actions)).
		Int("trials", req.NumTrials).
		Dur("duration", metric.Duration).
		Msg("simulation complete")
	return result, metric, nil
}

// buildShoe configures the draw distribution for one request: a full
// shoe minus the cards already visible on the table. Trial draws never
// deplete it further.
func buildShoe(req Request) *game.Shoe {
	shoe := game.NewShoe(req.NumDecks)
	for _, c := range req.PlayerCards {
		shoe.Remove(c)
	}
	shoe.Remove(req.DealerCard)
	return shoe
}

func buildResult(tallies [NumActions]tally, betSize float64, pair bool) Result {
	result := Result{
		Stand:     tallies[Stand].stats(betSize),
		HitOnce:   tallies[HitOnce].stats(betSize),
		HitTwice:  tallies[HitTwice].stats(betSize),
		HitThrice: tallies[HitThrice].stats(betSize),
	}
	if pair {
		once := tallies[SplitHitOnce].stats(betSize)
		twice := tallies[SplitHitTwice].stats(betSize)
		thrice := tallies[SplitHitThrice].stats(betSize)
		result.SplitHitOnce = &once
		result.SplitHitTwice = &twice
		result.SplitHitThrice = &thrice
	}
	return result
}
