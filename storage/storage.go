// Package storage persists scores across sessions. The game core only
// depends on the ScoreStore interface; tests and degraded startups use
// the in-memory implementation.
package storage

import "context"

// HighScoreKey is the key the best score is stored under.
const HighScoreKey = "snakeHighScore"

type ScoreStore interface {
	Close(ctx context.Context) error
	// HighScore returns the persisted best score. Absence is reported
	// with an error satisfying IsNotFound.
	HighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
	// RecordScore appends a finished game's score to the history.
	RecordScore(ctx context.Context, sessionID string, score int) error
	// RecentScores returns up to limit scores, most recent first.
	RecentScores(ctx context.Context, limit int) ([]int, error)
}

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
