package manager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/types"
	"grid-snake/log"
	"grid-snake/storage"
)

// StateManager owns the full game state and drives its transitions:
// steering, the per-tick simulation step, start/pause/reset and score
// bookkeeping. All state sits behind one mutex so any driver, single
// threaded or not, stays safe.
type StateManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	foodMgr      *FoodManager
	store        storage.ScoreStore
	notifier     Notifier

	sessionID string
	startTime time.Time

	mu        sync.Mutex
	snake     *entity.Snake
	food      types.Point
	started   bool
	running   bool
	over      bool
	score     int
	highScore int
}

func NewStateManager(ctx context.Context, grid types.Grid, store storage.ScoreStore, notifier Notifier, rng *rand.Rand) *StateManager {
	collisionMgr := NewCollisionManager(grid)
	sm := &StateManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      NewFoodManager(grid, collisionMgr, rng),
		store:        store,
		notifier:     notifier,
		sessionID:    uuid.New().String(),
		startTime:    time.Now(),
		snake:        entity.NewSnake(types.StartPosition, types.StartDir),
		food:         types.StartFood,
	}

	highScore, err := store.HighScore(ctx)
	if err != nil {
		if !storage.IsNotFound(err) {
			log.Warn("could not load high score, starting from 0: %v", err)
		}
		highScore = 0
	}
	sm.highScore = highScore

	if recent, err := store.RecentScores(ctx, 10); err == nil && len(recent) > 0 {
		best := recent[0]
		for _, s := range recent {
			if s > best {
				best = s
			}
		}
		log.Info("session %s starting: high score %d, best of last %d games %d",
			sm.sessionID, sm.highScore, len(recent), best)
	} else {
		log.Info("session %s starting: high score %d", sm.sessionID, sm.highScore)
	}

	return sm
}

// Start begins or resumes play. From a game over it resets first, so the
// next game starts from the initial layout.
func (sm *StateManager) Start() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.running {
		return
	}

	fresh := !sm.started || sm.over
	if sm.over {
		sm.resetLocked()
	}
	sm.started = true
	sm.running = true

	if fresh {
		sm.notifier.Notify("Game on", "Eat food, avoid walls and yourself", SeverityInfo)
	}
}

// Pause stops the tick from advancing the game. Idempotent.
func (sm *StateManager) Pause() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.running = false
}

// Reset unconditionally restores the initial layout, keeping only the
// persisted high score.
func (sm *StateManager) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.resetLocked()
	sm.started = false
}

func (sm *StateManager) resetLocked() {
	sm.snake = entity.NewSnake(types.StartPosition, types.StartDir)
	sm.food = types.StartFood
	sm.score = 0
	sm.over = false
	sm.running = false
}

// Running reports whether ticks should currently fire.
func (sm *StateManager) Running() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.running
}

// Tick advances the simulation by one step. It does nothing unless the
// game is running: a tick that races a pause or a game over is a no-op.
func (sm *StateManager) Tick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running || sm.over {
		return
	}

	newHead := sm.snake.Head().Add(sm.snake.Direction)

	if sm.collisionMgr.HitsWall(newHead) {
		sm.endGameLocked("wall collision")
		return
	}
	if sm.collisionMgr.HitsSnake(newHead, sm.snake) {
		sm.endGameLocked("self collision")
		return
	}

	sm.snake.Advance(newHead)

	if newHead != sm.food {
		sm.snake.TrimTail()
		return
	}

	sm.score += types.PointsPerFood
	if sm.score > sm.highScore {
		sm.highScore = sm.score
		if err := sm.store.SetHighScore(context.Background(), sm.highScore); err != nil {
			log.Warn("could not persist high score %d: %v", sm.highScore, err)
		}
		sm.notifier.Notify("New high score", fmt.Sprintf("%d points", sm.highScore), SeveritySuccess)
	}
	sm.notifier.Notify("Nice", fmt.Sprintf("+%d points", types.PointsPerFood), SeverityInfo)

	food, ok := sm.foodMgr.Place(sm.snake)
	if !ok {
		// The snake fills the board. Nothing left to eat: the player won.
		sm.over = true
		sm.running = false
		sm.recordScoreLocked()
		log.Info("session %s: board filled, final score %d", sm.sessionID, sm.score)
		sm.notifier.Notify("You win", fmt.Sprintf("The board is full — final score %d", sm.score), SeveritySuccess)
		return
	}
	sm.food = food
}

func (sm *StateManager) endGameLocked(reason string) {
	sm.over = true
	sm.running = false
	sm.recordScoreLocked()
	log.Info("session %s: game over (%s), score %d after %s", sm.sessionID, reason, sm.score, time.Since(sm.startTime).Round(time.Second))
	sm.notifier.Notify("Game over", fmt.Sprintf("%s — final score %d", reason, sm.score), SeverityWarning)
}

func (sm *StateManager) recordScoreLocked() {
	if err := sm.store.RecordScore(context.Background(), sm.sessionID, sm.score); err != nil {
		log.Warn("could not record score: %v", err)
	}
}

// Snapshot returns a copy of the current state for rendering and tests.
func (sm *StateManager) Snapshot() Snapshot {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return Snapshot{
		Grid:      sm.grid,
		Snake:     sm.snake.Cells(),
		Food:      sm.food,
		Score:     sm.score,
		HighScore: sm.highScore,
		Status:    sm.statusLocked(),
	}
}

func (sm *StateManager) statusLocked() Status {
	switch {
	case sm.over:
		return StatusGameOver
	case sm.running:
		return StatusRunning
	case sm.started:
		return StatusPaused
	default:
		return StatusIdle
	}
}
