package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const gameKey = "ringpong"

// HighScores persists the best score across process restarts. It is a
// thin collaborator: read when a room is created, written only when a
// session ends with a new record.
type HighScores struct {
	db *sql.DB
}

// Open opens or creates the high-score database at the given path.
func Open(path string) (*HighScores, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			game TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &HighScores{db: db}, nil
}

func (h *HighScores) Close() error {
	return h.db.Close()
}

// Best returns the stored high score, 0 when none has been recorded.
func (h *HighScores) Best() (int, error) {
	var score int
	err := h.db.QueryRow(`SELECT score FROM high_scores WHERE game = ?`, gameKey).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query high score: %w", err)
	}
	return score, nil
}

// Record stores score if it beats the stored value; lower scores are a
// no-op, so the persisted value never decreases.
func (h *HighScores) Record(score int) error {
	_, err := h.db.Exec(
		`INSERT INTO high_scores (game, score, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(game) DO UPDATE SET
			score = excluded.score,
			updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		gameKey,
		score,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record high score: %w", err)
	}
	return nil
}
