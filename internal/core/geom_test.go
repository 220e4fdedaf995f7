package core

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(30, 20)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"center", Cell{15, 10}, true},
		{"bottom-right corner", Cell{29, 19}, true},
		{"left of grid", Cell{-1, 5}, false},
		{"above grid", Cell{5, -1}, false},
		{"right edge (exclusive)", Cell{30, 5}, false},
		{"bottom edge (exclusive)", Cell{5, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridInterior(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		margin   int
		ok       bool
		expected Rect
	}{
		{"default playfield", NewGrid(30, 20), 3, true, NewRect(3, 3, 24, 14)},
		{"no margin", NewGrid(5, 4), 0, true, NewRect(0, 0, 5, 4)},
		{"single interior cell", NewGrid(7, 7), 3, true, NewRect(3, 3, 1, 1)},
		{"margin swallows width", NewGrid(6, 20), 3, false, Rect{}},
		{"margin swallows height", NewGrid(20, 5), 3, false, Rect{}},
		{"negative margin", NewGrid(10, 10), -1, false, Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := tc.grid.Interior(tc.margin)
			if ok != tc.ok {
				t.Fatalf("Interior(%d) ok = %v, expected %v", tc.margin, ok, tc.ok)
			}
			if r != tc.expected {
				t.Errorf("Interior(%d) = %+v, expected %+v", tc.margin, r, tc.expected)
			}
		})
	}
}

func TestGridInteriorMatchesMarginBounds(t *testing.T) {
	g := NewGrid(30, 20)
	margin := 3
	r, _ := g.Interior(margin)

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := Cell{col, row}
			want := col >= margin && col <= g.Width-1-margin &&
				row >= margin && row <= g.Height-1-margin
			if got := r.Contains(c); got != want {
				t.Errorf("Contains(%v) = %v, expected %v", c, got, want)
			}
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{5, 5}
	if got := c.Add(1, 0); got != (Cell{6, 5}) {
		t.Errorf("Add(1, 0) = %v, expected (6,5)", got)
	}
	if got := c.Add(0, -6); got != (Cell{5, -1}) {
		t.Errorf("Add(0, -6) = %v, expected (5,-1)", got)
	}
	if c.String() != "(5,5)" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestRectArea(t *testing.T) {
	if NewRect(0, 0, 24, 14).Area() != 336 {
		t.Error("Area of 24x14 should be 336")
	}
	if NewRect(0, 0, -1, 5).Area() != 0 {
		t.Error("Area of negative width should be 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
