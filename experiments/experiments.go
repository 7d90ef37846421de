package experiments

import (
	"fmt"

	"blackjack/game"
	"blackjack/simulator"
	"blackjack/simulator/metrics"

	"github.com/rs/zerolog/log"
)

// benchmarkRequest is the fixed scenario used by the experiments: a hard
// 16 against a dealer ten, the classic marginal decision.
func benchmarkRequest(trials int) simulator.Request {
	return simulator.Request{
		PlayerCards: []game.Rank{game.Ten, game.Six},
		DealerCard:  game.Ten,
		NumDecks:    6,
		BetSize:     10,
		NumTrials:   trials,
	}
}

// RunSpeedupExperiment measures simulation throughput across worker pool
// sizes and stores the records as CSV.
func RunSpeedupExperiment(trials int) error {
	workerCounts := []int{1, 2, 4, 8, 16, 32, 64}

	writer, err := metrics.NewWriter("speedup")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	req := benchmarkRequest(trials)
	records := []metrics.RunRecord{}

	log.Info().Msg("starting speedup experiment...")
	for i, workers := range workerCounts {
		sim := simulator.New(workers, simulator.WithMetrics())
		result, metric, err := sim.Simulate(req)
		if err != nil {
			return fmt.Errorf("simulation with %d workers failed: %w", workers, err)
		}

		log.Info().
			Int("workers", workers).
			Int("trials", metric.Trials).
			Dur("duration", metric.Duration).
			Float64("trials_per_second", metric.TrialsPerSecond()).
			Msg("completed run")

		records = append(records, metrics.RunRecord{
			ID:             i + 1,
			Workers:        workers,
			Trials:         metric.Trials,
			StandEV:        result.Stand.EstimatedValue,
			WinProbability: result.Stand.WinProbability,
			Duration:       metric.Duration,
		})
	}

	err = writer.WriteRunRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msg("completed speedup experiment")
	return nil
}

// RunConvergenceExperiment reruns the same request and reports how far
// the stand win probability spreads between runs. The spread shrinks
// with the trial budget; at a million trials it stays within a fraction
// of a percent.
func RunConvergenceExperiment(runs, trials int) error {
	writer, err := metrics.NewWriter("convergence")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	req := benchmarkRequest(trials)
	sim := simulator.New(0, simulator.WithMetrics())
	records := []metrics.RunRecord{}

	minWin, maxWin := 1.0, 0.0
	log.Info().Msgf("starting convergence experiment: %d runs of %d trials...", runs, trials)
	for i := 0; i < runs; i++ {
		result, metric, err := sim.Simulate(req)
		if err != nil {
			return fmt.Errorf("run %d failed: %w", i+1, err)
		}

		win := result.Stand.WinProbability
		if win < minWin {
			minWin = win
		}
		if win > maxWin {
			maxWin = win
		}

		records = append(records, metrics.RunRecord{
			ID:             i + 1,
			Workers:        metric.Workers,
			Trials:         metric.Trials,
			StandEV:        result.Stand.EstimatedValue,
			WinProbability: win,
			Duration:       metric.Duration,
		})
	}

	err = writer.WriteRunRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store run records: %w", err)
	}

	log.Info().
		Float64("min_win", minWin).
		Float64("max_win", maxWin).
		Float64("spread", maxWin-minWin).
		Msg("completed convergence experiment")
	return nil
}
