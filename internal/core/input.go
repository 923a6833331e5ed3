package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionLeft           // Left arrow, left mouse button - move left
	ActionRight          // Right arrow, right mouse button - move right
	ActionFire           // Enter, Space - fire a bullet
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool

	// PointerX is the pointer position in canvas pixels.
	// Only meaningful when HasPointer is true.
	PointerX   float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a pointer position for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Pointer returns the pointer position, or nil if the pointer did not move.
func (f InputFrame) Pointer() *float64 {
	if !f.HasPointer {
		return nil
	}
	x := f.PointerX
	return &x
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.HasPointer = f.HasPointer
	return clone
}

// PendingInput collects device events between ticks.
//
// Event handlers write to it; the frame loop calls Snapshot once at the start
// of each tick. Held actions (mouse buttons) persist until released. Pressed
// actions (key presses) and pointer moves are pulses consumed by the next
// Snapshot. All methods are safe for concurrent use.
type PendingInput struct {
	mu      sync.Mutex
	held    map[Action]bool
	pressed map[Action]bool
	pointer float64
	moved   bool
}

// NewPendingInput creates an empty pending input buffer.
func NewPendingInput() *PendingInput {
	return &PendingInput{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press records a one-shot action for the next tick.
func (p *PendingInput) Press(a Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pressed[a] = true
}

// Hold marks an action as held (down=true) or released (down=false).
func (p *PendingInput) Hold(a Action, down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if down {
		p.held[a] = true
	} else {
		delete(p.held, a)
	}
}

// ReleaseAll releases every held action.
func (p *PendingInput) ReleaseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.held {
		delete(p.held, k)
	}
}

// MovePointer records the latest pointer position.
func (p *PendingInput) MovePointer(x float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pointer = x
	p.moved = true
}

// Snapshot returns the input for one tick and clears the pulses.
func (p *PendingInput) Snapshot() InputFrame {
	p.mu.Lock()
	defer p.mu.Unlock()

	frame := NewInputFrame()
	for a := range p.held {
		frame.Set(a)
	}
	for a := range p.pressed {
		frame.Set(a)
		delete(p.pressed, a)
	}
	if p.moved {
		frame.SetPointer(p.pointer)
		p.moved = false
	}
	return frame
}
