package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blackjack/engine"

	_ "github.com/mattn/go-sqlite3"
)

// DB persists simulation history in sqlite.
type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS simulations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_cards TEXT NOT NULL,
		dealer_card TEXT NOT NULL,
		num_decks INTEGER NOT NULL,
		bet_size REAL NOT NULL,
		num_trials INTEGER NOT NULL,
		best_action TEXT NOT NULL,
		best_value REAL NOT NULL,
		stand_value REAL NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_simulations_created_at ON simulations(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

func (db *DB) SaveSimulation(ctx context.Context, rec engine.SimulationRecord) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO simulations
			(player_cards, dealer_card, num_decks, bet_size, num_trials,
			 best_action, best_value, stand_value, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PlayerCards, rec.DealerCard, rec.NumDecks, rec.BetSize,
		rec.NumTrials, rec.BestAction, rec.BestValue, rec.StandValue,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save simulation: %w", err)
	}
	return res.LastInsertId()
}

func (db *DB) RecentSimulations(ctx context.Context, limit int) ([]engine.SimulationRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, player_cards, dealer_card, num_decks, bet_size,
		       num_trials, best_action, best_value, stand_value,
		       duration_ms, created_at
		FROM simulations
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	var records []engine.SimulationRecord
	for rows.Next() {
		var rec engine.SimulationRecord
		var durationMS int64
		err = rows.Scan(&rec.ID, &rec.PlayerCards, &rec.DealerCard,
			&rec.NumDecks, &rec.BetSize, &rec.NumTrials, &rec.BestAction,
			&rec.BestValue, &rec.StandValue, &durationMS, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}
