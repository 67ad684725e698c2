package entity

import (
	"grid-snake/game/types"
)

// Snake is the player entity. Body is ordered head first and is contiguous
// by construction: every move prepends a cell orthogonally adjacent to the
// previous head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

func NewSnake(start, dir types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{start},
		Direction: dir,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Advance grows the snake by one cell at the front.
func (s *Snake) Advance(newHead types.Point) {
	s.Body = append([]types.Point{newHead}, s.Body...)
}

// TrimTail drops the last cell, keeping length constant across a
// non-eating move. The snake never shrinks below one cell.
func (s *Snake) TrimTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any body cell sits at p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, c := range s.Body {
		if c == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}

// SetDirection steers the snake toward dir. A request along the axis the
// snake already moves on is rejected, which rules out the instant 180°
// reversal that would collide with the neck segment.
func (s *Snake) SetDirection(dir types.Point) bool {
	if types.SameAxis(dir, s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}
