package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// ErrGridTooSmall means the safe margin leaves no cell where food may spawn.
	ErrGridTooSmall = errors.New("game: safe margin leaves no room for food")

	// ErrNoFreeCell means every cell food may spawn on is covered by the snake.
	ErrNoFreeCell = errors.New("game: no free cell for food")
)

// Occupancy reports which cells are taken.
type Occupancy interface {
	Occupies(c core.Cell) bool
}

// Food is the single food item. Present is false between consumption and
// respawn.
type Food struct {
	Cell    core.Cell
	Present bool
}

// FoodPlacer picks food cells inside the safe-margin sub-rectangle.
type FoodPlacer struct {
	area        core.Rect
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodPlacer creates a placer for grid that keeps margin cells clear of
// every edge. maxAttempts bounds rejection sampling; zero skips straight to
// the free-cell scan.
func NewFoodPlacer(grid core.Grid, margin, maxAttempts int, rng *rand.Rand) (*FoodPlacer, error) {
	area, ok := grid.Interior(margin)
	if !ok {
		return nil, fmt.Errorf("%w: margin %d on %dx%d grid", ErrGridTooSmall, margin, grid.Width, grid.Height)
	}
	return &FoodPlacer{
		area:        area,
		rng:         rng,
		maxAttempts: max(maxAttempts, 0),
	}, nil
}

// Area returns the rectangle food may spawn in.
func (p *FoodPlacer) Area() core.Rect {
	return p.area
}

// Place returns a uniformly random cell of the area not taken by occupied.
// Random draws are tried first; once they are exhausted the free cells are
// enumerated so placement always terminates. ErrNoFreeCell is returned when
// the area is fully covered.
func (p *FoodPlacer) Place(occupied Occupancy) (core.Cell, error) {
	for range p.maxAttempts {
		c := core.Cell{
			Col: p.area.X + p.rng.Intn(p.area.W),
			Row: p.area.Y + p.rng.Intn(p.area.H),
		}
		if !occupied.Occupies(c) {
			return c, nil
		}
	}

	free := p.freeCells(occupied)
	if len(free) == 0 {
		return core.Cell{}, fmt.Errorf("%w: all %d cells taken", ErrNoFreeCell, p.area.Area())
	}
	return free[p.rng.Intn(len(free))], nil
}

// freeCells lists the unoccupied cells of the area in row-major order.
func (p *FoodPlacer) freeCells(occupied Occupancy) []core.Cell {
	var free []core.Cell
	for row := p.area.Y; row < p.area.Bottom(); row++ {
		for col := p.area.X; col < p.area.Right(); col++ {
			c := core.Cell{Col: col, Row: row}
			if !occupied.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
