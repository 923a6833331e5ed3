package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestApplyKeyIsAPulse(t *testing.T) {
	km := NewKeyMapper()
	in := core.NewPendingInput()

	if km.ApplyKey(tea.KeyMsg{Type: tea.KeyLeft}, in) {
		t.Fatal("left should not quit")
	}
	if f := in.Snapshot(); !f.Has(core.ActionLeft) {
		t.Error("first snapshot should carry the key press")
	}
	if f := in.Snapshot(); f.Has(core.ActionLeft) {
		t.Error("key press should last one tick")
	}

	if !km.ApplyKey(runeKey("q"), in) {
		t.Error("q should quit")
	}
	if f := in.Snapshot(); f.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestApplyMouseHeldButtons(t *testing.T) {
	km := NewKeyMapper()
	in := core.NewPendingInput()
	mapping := MouseMapping{}

	km.ApplyMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, mapping, in)
	for i := range 3 {
		if f := in.Snapshot(); !f.Has(core.ActionLeft) {
			t.Fatalf("snapshot %d: left button should stay held", i)
		}
	}

	km.ApplyMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, mapping, in)
	if f := in.Snapshot(); f.Has(core.ActionLeft) {
		t.Error("release should let go of the left button")
	}

	km.ApplyMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, mapping, in)
	f := in.Snapshot()
	if !f.Has(core.ActionRight) || f.Has(core.ActionLeft) {
		t.Errorf("right button frame = %+v", f.Actions)
	}
	if f.HasPointer {
		t.Error("button games should not receive pointer positions")
	}
}

func TestApplyMousePointer(t *testing.T) {
	km := NewKeyMapper()
	in := core.NewPendingInput()
	mapping := MouseMapping{
		Pointer:   true,
		ToCanvasX: func(col int) float64 { return float64(col) * 10 },
	}

	km.ApplyMouse(tea.MouseMsg{X: 30, Action: tea.MouseActionMotion}, mapping, in)
	km.ApplyMouse(tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, mapping, in)

	f := in.Snapshot()
	if x := f.Pointer(); x == nil || *x != 420 {
		t.Errorf("pointer = %v, expected the latest position 420", x)
	}
	if f.Has(core.ActionLeft) {
		t.Error("pointer games should not treat buttons as directions")
	}
	if f := in.Snapshot(); f.Pointer() != nil {
		t.Error("pointer motion should last one tick")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
