// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a discrete grid coordinate. Column grows to the right, row grows
// downward.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is the fixed playfield measured in cells.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// InBounds returns true iff 0 <= col < Width and 0 <= row < Height.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{Col: g.Width / 2, Row: g.Height / 2}
}

// Interior returns the sub-rectangle that lies at least margin cells away
// from every edge. The boolean is false when that region is empty.
func (g Grid) Interior(margin int) (Rect, bool) {
	r := NewRect(margin, margin, g.Width-2*margin, g.Height-2*margin)
	if margin < 0 || r.W <= 0 || r.H <= 0 {
		return Rect{}, false
	}
	return r, true
}

// Rect represents an axis-aligned area of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell is inside this rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.Col >= r.X && c.Col < r.Right() && c.Row >= r.Y && c.Row < r.Bottom()
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
