package main

import (
	"net/http"
	"os"

	"blackjack/config"
	"blackjack/engine"
	"blackjack/server"
	"blackjack/simulator"
	"blackjack/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	simOptions := []simulator.Option{}
	if cfg.DealerHitsSoft17 {
		simOptions = append(simOptions, simulator.WithDealerHitsSoft17())
	}
	sim := simulator.New(cfg.Workers, simOptions...)

	engineOptions := []engine.Option{}
	if cfg.DatabasePath != "" {
		db, err := store.New(cfg.DatabasePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open history database")
		}
		defer db.Close()
		engineOptions = append(engineOptions, engine.WithHistory(db))
		log.Info().Str("path", cfg.DatabasePath).Msg("recording simulation history")
	}
	eng := engine.New(sim, engineOptions...)

	srv := server.New(eng, cfg.MaxTrials)
	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	err = http.ListenAndServe(cfg.ListenAddr, srv.Router())
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
