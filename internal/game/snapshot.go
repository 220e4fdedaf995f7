package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is the immutable view of a round handed to renderers and tests.
type Snapshot struct {
	Tick      uint64
	Body      []core.Cell // Head first
	Heading   Direction
	Food      Food
	Score     int
	HighScore int
	State     State
	Reason    EndReason
	NewRecord bool
}

// Snapshot captures the current round state.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Tick:      r.tick,
		Body:      r.snake.Body(),
		Heading:   r.snake.Heading(),
		Food:      r.food,
		Score:     r.score,
		HighScore: r.highScore,
		State:     r.state,
		Reason:    r.reason,
		NewRecord: r.newRecord,
	}
}

// Head returns the head cell of the captured body.
func (s Snapshot) Head() core.Cell {
	return s.Body[0]
}

// DebugState returns a string representation of the round state.
func (r *Round) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d\n", r.tick, r.score, r.highScore)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s\n", r.snake.Len(), r.snake.Heading())
	fmt.Fprintf(&b, "Head: %s, Food: %s (present %v)\n", r.snake.Head(), r.food.Cell, r.food.Present)
	fmt.Fprintf(&b, "State: %s, Reason: %q\n", r.state, r.reason)
	return b.String()
}
