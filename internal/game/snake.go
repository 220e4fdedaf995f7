package game

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the ordered body of the player, head first.
//
// A tick is a two-phase update: Advance inserts the new head, then Settle
// either keeps the tail (the snake grew) or drops it (plain movement).
type Snake struct {
	body    []core.Cell // Head at index 0
	heading Direction
	pending Direction // Applied on the next Advance
}

// NewSnake creates a snake of the given length with its head at head.
// The rest of the body trails behind, opposite to the heading.
func NewSnake(head core.Cell, length int, heading Direction) *Snake {
	length = max(length, 1)
	dc, dr := heading.Opposite().Delta()

	body := make([]core.Cell, length)
	for i := range body {
		body[i] = head.Add(dc*i, dr*i)
	}
	return NewSnakeFromBody(body, heading)
}

// NewSnakeFromBody creates a snake occupying body (head first).
// The slice is copied.
func NewSnakeFromBody(body []core.Cell, heading Direction) *Snake {
	return &Snake{
		body:    slices.Clone(body),
		heading: heading,
		pending: heading,
	}
}

// SetPendingDirection records the heading for the next Advance.
// A request for the inverse of the current heading is dropped and false is
// returned; otherwise the latest call wins.
func (s *Snake) SetPendingDirection(d Direction) bool {
	if d == s.heading.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Advance applies the pending heading and inserts the new head at the front
// of the body. The caller must follow up with Settle.
func (s *Snake) Advance() core.Cell {
	s.heading = s.pending
	dc, dr := s.heading.Delta()
	newHead := s.body[0].Add(dc, dr)
	s.body = slices.Insert(s.body, 0, newHead)
	return newHead
}

// Settle completes a tick. Unless the snake grew, the tail cell is removed
// so the length is unchanged.
func (s *Snake) Settle(grew bool) {
	if grew || len(s.body) <= 1 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// HitsSelf reports whether the head overlaps any other body cell.
func (s *Snake) HitsSelf() bool {
	return slices.Contains(s.body[1:], s.body[0])
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.body, c)
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Heading returns the direction of the last move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Pending returns the heading that the next Advance will apply.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	return slices.Clone(s.body)
}
