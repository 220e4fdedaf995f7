package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

func renderRound(r *Round, w, h int) *core.Screen {
	screen := core.NewScreen(w, h)
	r.Render(screen)
	return screen
}

func TestRenderHUD(t *testing.T) {
	r := newTestRound(t, highscore.NewMemoryStore(7))
	r.score = 2
	screen := renderRound(r, 80, 24)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE: 2") {
		t.Errorf("HUD %q should show the score", hud)
	}
	if !strings.Contains(hud, "HIGH SCORE: 7") {
		t.Errorf("HUD %q should show the high score", hud)
	}
	if !strings.Contains(hud, "SPACE: Pause") {
		t.Errorf("HUD %q should show the control hint on a wide screen", hud)
	}
}

func TestRenderWideCells(t *testing.T) {
	r := newTestRound(t, nil)
	arrange(r, []core.Cell{{15, 10}, {14, 10}}, DirRight, core.Cell{5, 5})
	screen := renderRound(r, 80, 24)

	// Board frame is 62 wide, centered at x=9, below the HUD
	if screen.Get(9, 1) != '┌' {
		t.Errorf("frame corner = %q, expected '┌'", screen.Get(9, 1))
	}
	if got := string([]rune(screen.Row(12))[40:42]); got != ":>" {
		t.Errorf("head = %q, expected \":>\"", got)
	}
	if got := string([]rune(screen.Row(12))[38:40]); got != "[]" {
		t.Errorf("body = %q, expected \"[]\"", got)
	}
	if got := string([]rune(screen.Row(7))[20:22]); got != "()" {
		t.Errorf("food = %q, expected \"()\"", got)
	}
	if screen.GetCell(40, 12).Color != core.ColorBrightGreen {
		t.Errorf("head color = %v, expected bright green", screen.GetCell(40, 12).Color)
	}
}

func TestRenderNarrowCells(t *testing.T) {
	r := newTestRound(t, nil)
	arrange(r, []core.Cell{{15, 10}}, DirUp, core.Cell{5, 5})
	screen := renderRound(r, 40, 24)

	// 32-wide frame centered at x=4
	if screen.Get(20, 12) != '^' {
		t.Errorf("head = %q, expected '^'", screen.Get(20, 12))
	}
	if screen.Get(10, 7) != '*' {
		t.Errorf("food = %q, expected '*'", screen.Get(10, 7))
	}
}

func TestRenderTooSmall(t *testing.T) {
	r := newTestRound(t, nil)
	if r.FitsScreen(20, 10) {
		t.Fatal("30x20 board should not fit a 20x10 screen")
	}
	if !r.FitsScreen(32, 23) {
		t.Error("30x20 board should fit 32x23 with narrow cells")
	}

	out := renderRound(r, 20, 10).String()
	if !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected too-small notice, got:\n%s", out)
	}
}

func TestRenderPaused(t *testing.T) {
	r := newTestRound(t, nil)
	step(t, r, core.ActionPause)

	out := renderRound(r, 80, 24).String()
	for _, want := range []string{"GAME PAUSED", "Press SPACE to continue", "Press ESC for menu"} {
		if !strings.Contains(out, want) {
			t.Errorf("paused screen missing %q", want)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	tests := []struct {
		name  string
		high  int
		score int
		want  string
		avoid string
	}{
		{"new record", 0, 3, "NEW HIGH SCORE!", "High Score:"},
		{"tie", 4, 4, "NEW HIGH SCORE!", "High Score:"},
		{"below record", 10, 3, "High Score: 10", "NEW HIGH SCORE!"},
		{"zero score", 0, 0, "High Score: 0", "NEW HIGH SCORE!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRound(t, highscore.NewMemoryStore(tc.high))
			arrange(r, []core.Cell{{0, 5}}, DirLeft, core.Cell{20, 15})
			r.score = tc.score
			step(t, r)

			out := renderRound(r, 80, 24).String()
			if !strings.Contains(out, "GAME OVER") {
				t.Error("missing GAME OVER")
			}
			if !strings.Contains(out, "Press R to Restart") {
				t.Error("missing restart hint")
			}
			if !strings.Contains(out, tc.want) {
				t.Errorf("expected %q in:\n%s", tc.want, out)
			}
			if strings.Contains(out, tc.avoid) {
				t.Errorf("did not expect %q in:\n%s", tc.avoid, out)
			}
		})
	}
}

func TestRenderFatalHeadOnFrame(t *testing.T) {
	r := newTestRound(t, nil)
	arrange(r, []core.Cell{{0, 5}}, DirLeft, core.Cell{20, 15})
	step(t, r)

	// Head at (-1,5) lands on the left frame edge
	screen := renderRound(r, 80, 24)
	if got := string([]rune(screen.Row(7))[8:10]); got != "XX" {
		t.Errorf("dead head = %q, expected \"XX\"", got)
	}
	if screen.GetCell(8, 7).Color != core.ColorBrightRed {
		t.Errorf("dead head color = %v, expected bright red", screen.GetCell(8, 7).Color)
	}
}

func TestRenderNoRoom(t *testing.T) {
	r := newTestRound(t, nil)
	r.end(EndNoRoom)

	out := renderRound(r, 80, 24).String()
	if !strings.Contains(out, "No room left for food") {
		t.Errorf("expected no-room notice in:\n%s", out)
	}
	if strings.Contains(out, "XX") {
		t.Error("no-room ending should not draw a dead head")
	}
}

func TestRenderStartScreen(t *testing.T) {
	screen := core.NewScreen(60, 20)
	RenderStartScreen(screen, 12)

	out := screen.String()
	for _, want := range []string{"S N A K E", "High Score: 12", "Press ANY KEY to Start"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q", want)
		}
	}
}
