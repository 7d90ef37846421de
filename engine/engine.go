package engine

import (
	"context"
	"strings"
	"time"

	"blackjack/game"
	"blackjack/simulator"

	"github.com/rs/zerolog/log"
)

// SimulationRecord is one row of simulation history: the request summary
// plus the headline outcome.
type SimulationRecord struct {
	ID          int64
	PlayerCards string
	DealerCard  string
	NumDecks    int
	BetSize     float64
	NumTrials   int
	BestAction  string
	BestValue   float64
	StandValue  float64
	Duration    time.Duration
	CreatedAt   time.Time
}

// HistoryStore persists completed simulation runs. The engine treats it
// as best-effort: a failed write is logged, not surfaced.
type HistoryStore interface {
	SaveSimulation(ctx context.Context, rec SimulationRecord) (int64, error)
	RecentSimulations(ctx context.Context, limit int) ([]SimulationRecord, error)
}

type Option func(e *Engine)

// WithHistory records every completed run into the given store.
func WithHistory(store HistoryStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// Engine is the adapter between plain request records and the Monte
// Carlo simulator: it validates, delegates, logs, and optionally records
// history. The simulator itself stays a pure function of its input.
type Engine struct {
	sim   *simulator.Simulator
	store HistoryStore
}

func New(sim *simulator.Simulator, options ...Option) *Engine {
	e := &Engine{sim: sim}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes one simulation request to completion. All-or-nothing: an
// invalid request returns an error before any trial runs.
func (e *Engine) Run(ctx context.Context, req simulator.Request) (simulator.Result, error) {
	start := time.Now()
	result, _, err := e.sim.Simulate(req)
	if err != nil {
		log.Warn().Err(err).Msg("rejected simulation request")
		return simulator.Result{}, err
	}
	elapsed := time.Since(start)

	best, stats := result.Best()
	log.Info().
		Str("player", formatCards(req.PlayerCards)).
		Str("dealer", req.DealerCard.String()).
		Int("decks", req.NumDecks).
		Int("trials", req.NumTrials).
		Str("best_action", best.String()).
		Float64("best_ev", stats.EstimatedValue).
		Dur("duration", elapsed).
		Msg("simulation run")

	if e.store != nil {
		rec := SimulationRecord{
			PlayerCards: formatCards(req.PlayerCards),
			DealerCard:  req.DealerCard.String(),
			NumDecks:    req.NumDecks,
			BetSize:     req.BetSize,
			NumTrials:   req.NumTrials,
			BestAction:  best.String(),
			BestValue:   stats.EstimatedValue,
			StandValue:  result.Stand.EstimatedValue,
			Duration:    elapsed,
		}
		_, err := e.store.SaveSimulation(ctx, rec)
		if err != nil {
			log.Warn().Err(err).Msg("failed to record simulation history")
		}
	}

	return result, nil
}

// History lists the most recent recorded runs, newest first. Without a
// store it is empty rather than an error.
func (e *Engine) History(ctx context.Context, limit int) ([]SimulationRecord, error) {
	if e.store == nil {
		return nil, nil
	}
	return e.store.RecentSimulations(ctx, limit)
}

func formatCards(cards []game.Rank) string {
	symbols := make([]string, len(cards))
	for i, c := range cards {
		symbols[i] = c.String()
	}
	return strings.Join(symbols, ",")
}
