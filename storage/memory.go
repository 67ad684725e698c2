package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps scores for the current process only. It backs tests
// and sessions where the score database cannot be opened.
type MemoryStore struct {
	mu        sync.Mutex
	highScore int
	hasHigh   bool
	history   []int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) HighScore(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasHigh {
		return 0, &ErrNotFound{}
	}
	return s.highScore, nil
}

func (s *MemoryStore) SetHighScore(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScore = score
	s.hasHigh = true
	return nil
}

func (s *MemoryStore) RecordScore(ctx context.Context, sessionID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, score)
	return nil
}

func (s *MemoryStore) RecentScores(ctx context.Context, limit int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var scores []int
	for i := len(s.history) - 1; i >= 0 && len(scores) < limit; i-- {
		scores = append(scores, s.history[i])
	}
	return scores, nil
}
