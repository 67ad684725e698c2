package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestPlaceAvoidsSnake(t *testing.T) {
	grid := types.DefaultGrid()
	fm := NewFoodManager(grid, NewCollisionManager(grid), testRNG())

	snake := entity.NewSnake(types.Point{X: 10, Y: 10}, types.DirRight)
	for x := 0; x < 10; x++ {
		snake.Advance(types.Point{X: x, Y: 10})
	}

	for i := 0; i < 200; i++ {
		food, ok := fm.Place(snake)
		require.True(t, ok)
		assert.True(t, grid.Contains(food))
		assert.False(t, snake.Occupies(food), "food %v placed on snake", food)
	}
}

func TestPlaceOnNearlyFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, NewCollisionManager(grid), testRNG())

	// Snake covers all but (1, 1).
	snake := &entity.Snake{
		Body: []types.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 0, Y: 1},
		},
		Direction: types.DirRight,
	}

	food, ok := fm.Place(snake)
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 1, Y: 1}, food)
}

func TestPlaceOnFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, NewCollisionManager(grid), testRNG())

	snake := &entity.Snake{
		Body: []types.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
		Direction: types.DirRight,
	}

	_, ok := fm.Place(snake)
	assert.False(t, ok, "a full board has no room for food")
}
