package main

import (
	"flag"
	"os"

	"blackjack/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "speedup", "Experiment to run: speedup or convergence")
	trials := flag.Int("trials", 1000000, "Trial budget per action per run")
	runs := flag.Int("runs", 10, "Number of repeated runs (convergence only)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var err error
	switch *experiment {
	case "speedup":
		err = experiments.RunSpeedupExperiment(*trials)
	case "convergence":
		err = experiments.RunConvergenceExperiment(*runs, *trials)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
