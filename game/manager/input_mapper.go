package manager

import (
	"grid-snake/input"
)

// HandleKey maps a key press onto the game state. Arrows steer only
// while the game runs; space pauses a running game and starts or
// restarts a stopped one; R always resets.
func (sm *StateManager) HandleKey(k input.Key) {
	switch k {
	case input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight:
		dir, ok := k.Vector()
		if !ok {
			return
		}
		sm.mu.Lock()
		if sm.running && !sm.over {
			sm.snake.SetDirection(dir)
		}
		sm.mu.Unlock()
	case input.KeySpace:
		if sm.Running() {
			sm.Pause()
		} else {
			sm.Start()
		}
	case input.KeyReset:
		sm.Reset()
	}
}
