package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings, loaded from the
// environment with sensible defaults. Everything is optional: an empty
// environment yields a working local server without history storage.
type Config struct {
	ListenAddr       string
	Workers          int
	MaxTrials        int
	DatabasePath     string
	DealerHitsSoft17 bool
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		ListenAddr:   ":8080",
		Workers:      0, // 0 lets the simulator size the pool to the CPUs
		MaxTrials:    5000000,
		DatabasePath: os.Getenv("DATABASE_PATH"),
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if workers := os.Getenv("WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKERS value %q: %w", workers, err)
		}
		cfg.Workers = n
	}

	if trials := os.Getenv("MAX_TRIALS"); trials != "" {
		n, err := strconv.Atoi(trials)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_TRIALS value %q: %w", trials, err)
		}
		cfg.MaxTrials = n
	}

	if rule := os.Getenv("DEALER_HITS_SOFT_17"); rule != "" {
		hits, err := strconv.ParseBool(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid DEALER_HITS_SOFT_17 value %q: %w", rule, err)
		}
		cfg.DealerHitsSoft17 = hits
	}

	return cfg, nil
}
