package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

func TestHitsWall(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())

	tests := []struct {
		name string
		pos  types.Point
		hit  bool
	}{
		{"inside", types.Point{X: 10, Y: 10}, false},
		{"top left corner", types.Point{X: 0, Y: 0}, false},
		{"bottom right corner", types.Point{X: 19, Y: 19}, false},
		{"left of grid", types.Point{X: -1, Y: 5}, true},
		{"right of grid", types.Point{X: 20, Y: 5}, true},
		{"above grid", types.Point{X: 5, Y: -1}, true},
		{"below grid", types.Point{X: 5, Y: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hit, cm.HitsWall(tt.pos))
		})
	}
}

func TestHitsSnake(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.DirRight)
	snake.Advance(types.Point{X: 6, Y: 5})

	assert.True(t, cm.HitsSnake(types.Point{X: 5, Y: 5}, snake))
	assert.True(t, cm.HitsSnake(types.Point{X: 6, Y: 5}, snake))
	assert.False(t, cm.HitsSnake(types.Point{X: 7, Y: 5}, snake))
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.DirRight)

	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 5}, snake))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: -1, Y: 0}, snake))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, snake))
}
