package main

import (
	"context"
	"flag"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"grid-snake/game/manager"
	"grid-snake/game/types"
	"grid-snake/input"
	"grid-snake/log"
	"grid-snake/storage"
	"grid-snake/ui"
)

func main() {
	speed := flag.Int("speed", int(types.TickInterval/time.Millisecond), "tick interval in milliseconds")
	dbPath := flag.String("db", filepath.Join("data", "scores.db"), "path to the score database")
	logLevel := flag.String("log-level", "info", "log level (error, warn, info, debug)")
	flag.Parse()

	if level, err := log.ParseLevel(*logLevel); err != nil {
		log.Warn("%v, keeping level info", err)
	} else {
		log.SetLevel(level)
	}

	ctx := context.Background()

	var store storage.ScoreStore
	store, err := storage.NewSQLiteStore(ctx, *dbPath)
	if err != nil {
		log.Warn("score database unavailable, scores will not persist: %v", err)
		store = storage.NewMemoryStore()
	}
	defer store.Close(ctx)

	rl.InitWindow(960, 640, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	toasts := ui.NewToastManager()
	sm := manager.NewStateManager(ctx, types.DefaultGrid(), store, toasts, rng)
	renderer := ui.NewRenderer()

	tickInterval := time.Duration(*speed) * time.Millisecond
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		if key := input.Poll(); key != input.KeyNone {
			sm.HandleKey(key)
		}

		// The tick clock only advances while the game runs, so a pause
		// or game over leaves no stale tick behind.
		if !sm.Running() {
			lastUpdate = time.Now()
		} else if time.Since(lastUpdate) >= tickInterval {
			sm.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(sm.Snapshot(), toasts.Active())
	}
}
