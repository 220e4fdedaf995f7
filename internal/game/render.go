package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 1

// glyphs holds the runes for one grid cell at a given cell width.
type glyphs struct {
	body  string
	food  string
	dead  string
	heads map[Direction]string
}

var (
	wideGlyphs = glyphs{
		body: "[]",
		food: "()",
		dead: "XX",
		heads: map[Direction]string{
			DirUp:    "/\\",
			DirDown:  "\\/",
			DirLeft:  "<:",
			DirRight: ":>",
		},
	}
	narrowGlyphs = glyphs{
		body: "o",
		food: "*",
		dead: "X",
		heads: map[Direction]string{
			DirUp:    "^",
			DirDown:  "v",
			DirLeft:  "<",
			DirRight: ">",
		},
	}
)

// layout is the board placement on a screen.
type layout struct {
	cellW      int
	offX, offY int // Top-left of the board frame
	g          glyphs
}

// cellPos returns the screen position of a grid cell.
// Cells one step outside the grid land on the frame.
func (l layout) cellPos(c core.Cell) (int, int) {
	return l.offX + 1 + c.Col*l.cellW, l.offY + 1 + c.Row
}

// fit picks the widest cell size whose board fits in w x h.
func fit(grid core.Grid, w, h int) (layout, bool) {
	for _, cellW := range []int{2, 1} {
		boardW := grid.Width*cellW + 2
		boardH := grid.Height + 2
		if boardW <= w && boardH+hudHeight <= h {
			g := wideGlyphs
			if cellW == 1 {
				g = narrowGlyphs
			}
			return layout{
				cellW: cellW,
				offX:  (w - boardW) / 2,
				offY:  hudHeight,
				g:     g,
			}, true
		}
	}
	return layout{}, false
}

// FitsScreen reports whether the board can be drawn on a w x h screen.
func (r *Round) FitsScreen(w, h int) bool {
	_, ok := fit(r.grid, w, h)
	return ok
}

// Render draws the current round state to dst.
func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := fit(r.grid, dst.Width(), dst.Height())
	if !ok {
		need := fmt.Sprintf("Need %dx%d", r.grid.Width+2, r.grid.Height+2+hudHeight)
		renderOverlay(dst, []overlayLine{
			{"Terminal too small", core.ColorBrightRed},
			{need, core.ColorWhite},
		})
		return
	}

	r.renderHUD(dst)
	dst.DrawBox(core.NewRect(l.offX, l.offY, r.grid.Width*l.cellW+2, r.grid.Height+2), core.ColorGray)

	// Food first so a fatal head drawn on top stays visible
	if r.food.Present {
		x, y := l.cellPos(r.food.Cell)
		dst.DrawTextColored(x, y, l.g.food, core.ColorRed)
	}
	r.renderSnake(dst, l)

	switch r.state {
	case StatePaused:
		renderOverlay(dst, []overlayLine{
			{"GAME PAUSED", core.ColorBrightBlue},
			{"", core.ColorDefault},
			{"Press SPACE to continue", core.ColorWhite},
			{"Press ESC for menu", core.ColorGray},
		})
	case StateOver:
		renderOverlay(dst, r.gameOverLines())
	}
}

// renderHUD draws score, control hint and high score on the top row.
func (r *Round) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf(" SCORE: %d", r.score)
	high := fmt.Sprintf("HIGH SCORE: %d ", r.highScore)
	hint := "ARROWS: Move | SPACE: Pause"

	dst.DrawTextColored(0, 0, score, core.ColorWhite)
	highX := dst.Width() - utf8.RuneCountInString(high)
	dst.DrawTextColored(highX, 0, high, core.ColorBrightBlue)

	// Hint only when it does not collide with the scores
	hintX := (dst.Width() - len(hint)) / 2
	if hintX > len(score)+1 && hintX+len(hint) < highX-1 {
		dst.DrawTextColored(hintX, 0, hint, core.ColorGray)
	}
}

// renderSnake draws the body tail-first so the head ends on top.
func (r *Round) renderSnake(dst *core.Screen, l layout) {
	body := r.snake.body
	for i := len(body) - 1; i >= 1; i-- {
		x, y := l.cellPos(body[i])
		dst.DrawTextColored(x, y, l.g.body, core.ColorGreen)
	}

	x, y := l.cellPos(body[0])
	if r.state == StateOver && r.reason != EndNoRoom {
		dst.DrawTextColored(x, y, l.g.dead, core.ColorBrightRed)
		return
	}
	dst.DrawTextColored(x, y, l.g.heads[r.snake.Heading()], core.ColorBrightGreen)
}

// gameOverLines builds the end-of-round summary.
func (r *Round) gameOverLines() []overlayLine {
	lines := []overlayLine{
		{"GAME OVER", core.ColorBrightBlue},
	}
	if r.reason == EndNoRoom {
		lines = append(lines, overlayLine{"No room left for food", core.ColorYellow})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{fmt.Sprintf("Your Score: %d", r.score), core.ColorWhite},
	)
	if r.score == r.highScore && r.score > 0 {
		lines = append(lines, overlayLine{"NEW HIGH SCORE!", core.ColorGold})
	} else {
		lines = append(lines, overlayLine{fmt.Sprintf("High Score: %d", r.highScore), core.ColorWhite})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{"Press R to Restart", core.ColorGreen},
		overlayLine{"Press Q to Quit", core.ColorRed},
	)
	return lines
}

// RenderStartScreen draws the title screen shown before the first round.
func RenderStartScreen(dst *core.Screen, highScore int) {
	dst.Clear()

	h := dst.Height()
	top := core.Clamp((h-12)/2, 0, max(h-12, 0))

	dst.DrawTextCentered(top, "S N A K E", core.ColorBrightBlue)
	dst.DrawTextCentered(top+1, "Terminal Edition", core.ColorWhite)

	// Demo snake heading for its food
	demo := "[][][]:>    ()"
	x := (dst.Width() - len(demo)) / 2
	dst.DrawTextColored(x, top+3, "[][][]", core.ColorGreen)
	dst.DrawTextColored(x+6, top+3, ":>", core.ColorBrightGreen)
	dst.DrawTextColored(x+12, top+3, "()", core.ColorRed)

	dst.DrawTextCentered(top+5, fmt.Sprintf("High Score: %d", highScore), core.ColorGold)
	dst.DrawTextCentered(top+7, "Press ANY KEY to Start", core.ColorWhite)
	dst.DrawTextCentered(top+9, "Use Arrow Keys to Move", core.ColorGray)
	dst.DrawTextCentered(top+10, "SPACE to Pause", core.ColorGray)
	dst.DrawTextCentered(top+11, "Q to Quit", core.ColorGray)
}

// overlayLine is one centered line of an overlay box.
type overlayLine struct {
	text  string
	color core.Color
}

// renderOverlay draws a framed box with centered lines in the middle of dst.
func renderOverlay(dst *core.Screen, lines []overlayLine) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line.text))
	}
	boxW := maxLen + 6
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)

	for i, line := range lines {
		dst.DrawTextCentered(boxY+2+i, line.text, line.color)
	}
}
