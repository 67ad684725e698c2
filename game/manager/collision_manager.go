package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// HitsWall checks if a position lies outside the play field.
func (cm *CollisionManager) HitsWall(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// HitsSnake checks if a position collides with any cell of the snake body.
func (cm *CollisionManager) HitsSnake(pos types.Point, snake *entity.Snake) bool {
	return snake.Occupies(pos)
}

// ValidateSpawnPosition checks if a position is free for placing food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.HitsWall(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
