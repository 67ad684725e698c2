package manager

import (
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// maxPlaceAttempts bounds random resampling before falling back to a
// linear scan, so placement terminates even on a nearly full board.
const maxPlaceAttempts = 64

type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

// Place picks a uniformly random free cell for the next food. It resamples
// while the chosen cell is occupied, then scans the whole grid in order.
// The second return is false only when the snake covers every cell.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxPlaceAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Dense board: take the first free cell in scan order.
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			food := types.Point{X: x, Y: y}
			if !snake.Occupies(food) {
				return food, true
			}
		}
	}

	return types.Point{}, false
}
