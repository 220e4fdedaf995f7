package core

import "testing"

func TestInputFrameLatestDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionDown)

	if f.Direction != ActionDown {
		t.Errorf("Direction = %v, expected Down", f.Direction)
	}
	if f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Error("Only the latest direction should be reported")
	}
	if !f.Has(ActionDown) {
		t.Error("Has(Down) should be true")
	}
}

func TestInputFramePauseToggles(t *testing.T) {
	tests := []struct {
		presses  int
		expected bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, true},
	}

	for _, tc := range tests {
		f := NewInputFrame()
		for i := 0; i < tc.presses; i++ {
			f.Set(ActionPause)
		}
		if got := f.PauseToggled(); got != tc.expected {
			t.Errorf("%d presses: PauseToggled() = %v, expected %v", tc.presses, got, tc.expected)
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Set(ActionRestart)
	f.Clear()

	if f.Direction != ActionNone {
		t.Errorf("Direction after Clear = %v, expected None", f.Direction)
	}
	if f.Has(ActionRestart) || f.PauseToggled() {
		t.Error("Clear should reset all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate and record")
	}
	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionPause.String() != "Pause" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
