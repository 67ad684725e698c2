package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]ScoreStore {
	t.Helper()
	ctx := context.Background()

	sqlite, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close(ctx) })

	return map[string]ScoreStore{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.HighScore(ctx)
			require.Error(t, err)
			assert.True(t, IsNotFound(err), "a fresh store has no high score")

			require.NoError(t, store.SetHighScore(ctx, 40))
			score, err := store.HighScore(ctx)
			require.NoError(t, err)
			assert.Equal(t, 40, score)

			require.NoError(t, store.SetHighScore(ctx, 70))
			score, err = store.HighScore(ctx)
			require.NoError(t, err)
			assert.Equal(t, 70, score)
		})
	}
}

func TestScoreHistory(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			recent, err := store.RecentScores(ctx, 5)
			require.NoError(t, err)
			assert.Empty(t, recent)

			for _, score := range []int{10, 30, 20} {
				require.NoError(t, store.RecordScore(ctx, "session-1", score))
			}

			recent, err = store.RecentScores(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, []int{20, 30}, recent, "most recent first")
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SetHighScore(ctx, 120))
	require.NoError(t, store.Close(ctx))

	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	score, err := reopened.HighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, score)
}
