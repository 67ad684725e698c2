package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-snake/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, types.DirUp)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, types.Point{X: 10, Y: 10}, s.Head())
	assert.Equal(t, types.DirUp, s.Direction)
}

func TestAdvanceAndTrim(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.DirRight)

	s.Advance(types.Point{X: 6, Y: 5})
	require.Equal(t, 2, s.Len())
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Head())
	assert.Equal(t, types.Point{X: 5, Y: 5}, s.Body[1])

	s.TrimTail()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Head())

	// A length-one snake keeps its only cell.
	s.TrimTail()
	assert.Equal(t, 1, s.Len())
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.DirRight)
	s.Advance(types.Point{X: 2, Y: 1})

	assert.True(t, s.Occupies(types.Point{X: 1, Y: 1}))
	assert.True(t, s.Occupies(types.Point{X: 2, Y: 1}))
	assert.False(t, s.Occupies(types.Point{X: 3, Y: 1}))
}

func TestSetDirectionRejectsSameAxis(t *testing.T) {
	tests := []struct {
		name     string
		current  types.Point
		request  types.Point
		accepted bool
	}{
		{"right to left is a reversal", types.DirRight, types.DirLeft, false},
		{"right to right is redundant", types.DirRight, types.DirRight, false},
		{"right to up turns", types.DirRight, types.DirUp, true},
		{"right to down turns", types.DirRight, types.DirDown, true},
		{"up to down is a reversal", types.DirUp, types.DirDown, false},
		{"up to up is redundant", types.DirUp, types.DirUp, false},
		{"up to left turns", types.DirUp, types.DirLeft, true},
		{"down to right turns", types.DirDown, types.DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(types.Point{X: 5, Y: 5}, tt.current)
			got := s.SetDirection(tt.request)
			assert.Equal(t, tt.accepted, got)
			if tt.accepted {
				assert.Equal(t, tt.request, s.Direction)
			} else {
				assert.Equal(t, tt.current, s.Direction)
			}
		})
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.DirUp)
	cells := s.Cells()
	cells[0] = types.Point{X: 0, Y: 0}
	assert.Equal(t, types.Point{X: 5, Y: 5}, s.Head())
}
