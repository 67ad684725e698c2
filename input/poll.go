package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poll returns the key pressed during the current frame, or KeyNone.
// raylib reports a press once per key-down, so holding a key does not
// repeat the event.
func Poll() Key {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return KeyUp
	case rl.IsKeyPressed(rl.KeyDown):
		return KeyDown
	case rl.IsKeyPressed(rl.KeyLeft):
		return KeyLeft
	case rl.IsKeyPressed(rl.KeyRight):
		return KeyRight
	case rl.IsKeyPressed(rl.KeySpace):
		return KeySpace
	case rl.IsKeyPressed(rl.KeyR):
		return KeyReset
	}
	return KeyNone
}
