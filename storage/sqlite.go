package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	key TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS score_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	score INTEGER NOT NULL,
	recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteStore{
		db: db,
	}, nil
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLiteStore) HighScore(ctx context.Context) (int, error) {
	q := `
	SELECT value FROM scores WHERE key = ?;
	`
	var score int
	if err := s.db.QueryRowContext(ctx, q, HighScoreKey).Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, &ErrNotFound{}
		}
		return 0, fmt.Errorf("failed to scan high score: %v", err)
	}

	return score, nil
}

func (s *SQLiteStore) SetHighScore(ctx context.Context, score int) error {
	q := `
	INSERT OR REPLACE INTO scores (key, value)
	VALUES (?, ?);
	`
	if _, err := s.db.ExecContext(ctx, q, HighScoreKey, score); err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}

	return nil
}

func (s *SQLiteStore) RecordScore(ctx context.Context, sessionID string, score int) error {
	q := `
	INSERT INTO score_history (session_id, score)
	VALUES (?, ?);
	`
	if _, err := s.db.ExecContext(ctx, q, sessionID, score); err != nil {
		return fmt.Errorf("failed to record score: %v", err)
	}

	return nil
}

func (s *SQLiteStore) RecentScores(ctx context.Context, limit int) ([]int, error) {
	q := `
	SELECT score FROM score_history ORDER BY id DESC LIMIT ?;
	`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query score history: %v", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}
