package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// ApplyKey records a key press as a one-tick pulse.
// Terminals deliver auto-repeat as repeated presses, so holding an arrow
// keeps moving. Returns true if the key was a quit request.
func (km *KeyMapper) ApplyKey(msg tea.KeyMsg, in *core.PendingInput) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		in.Press(action)
	}
	return isQuit
}

// MouseMapping describes how mouse events reach the current game.
type MouseMapping struct {
	// Pointer is set for pointer-steered games.
	Pointer bool

	// ToCanvasX converts a screen column to canvas pixels.
	ToCanvasX func(col int) float64
}

// ApplyMouse records a mouse event.
//
// Pointer-steered games receive the pointer column as a canvas position and
// ignore buttons. Other games treat the left and right buttons as held
// directions until release. Neither case opens a context menu.
func (km *KeyMapper) ApplyMouse(msg tea.MouseMsg, m MouseMapping, in *core.PendingInput) {
	if m.Pointer {
		if m.ToCanvasX != nil && msg.Action != tea.MouseActionRelease {
			in.MovePointer(m.ToCanvasX(msg.X))
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			in.Hold(core.ActionLeft, true)
		case tea.MouseButtonRight:
			in.Hold(core.ActionRight, true)
		}
	case tea.MouseActionRelease:
		// Most terminals report releases without the button.
		switch msg.Button {
		case tea.MouseButtonLeft:
			in.Hold(core.ActionLeft, false)
		case tea.MouseButtonRight:
			in.Hold(core.ActionRight, false)
		default:
			in.Hold(core.ActionLeft, false)
			in.Hold(core.ActionRight, false)
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
