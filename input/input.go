// Package input identifies the keys the game reacts to and polls them
// from the window. Only the arrows, space and R are meaningful; anything
// else is reported as KeyNone and ignored upstream.
package input

import (
	"grid-snake/game/types"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyReset
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyReset:
		return "reset"
	default:
		return "none"
	}
}

// Vector returns the movement direction for an arrow key. The second
// return is false for non-directional keys.
func (k Key) Vector() (types.Point, bool) {
	switch k {
	case KeyUp:
		return types.DirUp, true
	case KeyDown:
		return types.DirDown, true
	case KeyLeft:
		return types.DirLeft, true
	case KeyRight:
		return types.DirRight, true
	default:
		return types.Point{}, false
	}
}
