package manager

import (
	"grid-snake/game/types"
)

// Status is the controller state derived from the running and over flags.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CellClass is the four-way display classification of a grid cell.
type CellClass int

const (
	CellEmpty CellClass = iota
	CellSnakeHead
	CellSnakeBody
	CellFood
)

// Snapshot is a copy of the game state handed to the renderer each frame.
type Snapshot struct {
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	Score     int
	HighScore int
	Status    Status
}

// ClassifyCell reports what occupies p. Food never overlaps the snake,
// so the order of the checks only matters for malformed input.
func (s Snapshot) ClassifyCell(p types.Point) CellClass {
	if len(s.Snake) > 0 {
		if p == s.Snake[0] {
			return CellSnakeHead
		}
		for _, c := range s.Snake[1:] {
			if c == p {
				return CellSnakeBody
			}
		}
	}
	if p == s.Food {
		return CellFood
	}
	return CellEmpty
}
