package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// Auto-repeat timing for held keys, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
}

var keyBindings = []keyBinding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, core.ActionFire},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyB}, core.ActionBack},
}

// repeats reports whether a key held for d ticks fires on this tick:
// once when pressed, then every repeatInterval ticks after repeatDelay.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pollKeys presses the action of every key that fires this tick.
// duration reports how many ticks a key has been held, 0 when it is up.
// It returns true when a quit key was pressed.
func pollKeys(duration func(ebiten.Key) int, in *core.PendingInput) bool {
	if duration(ebiten.KeyQ) == 1 {
		return true
	}
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if repeats(duration(k)) {
				in.Press(b.action)
				break
			}
		}
	}
	return false
}

// mouseState is the mouse as seen on one tick, in canvas pixels.
type mouseState struct {
	x           int
	left, right bool
}

// mouseTracker turns polled mouse state into pending input.
type mouseTracker struct {
	lastX int
	seen  bool
}

// apply forwards the cursor to pointer games when it moves, and the buttons
// to every other game as held directions.
func (t *mouseTracker) apply(ms mouseState, pointer bool, in *core.PendingInput) {
	if pointer {
		if !t.seen || ms.x != t.lastX {
			in.MovePointer(float64(ms.x))
		}
		t.lastX = ms.x
		t.seen = true
		return
	}
	in.Hold(core.ActionLeft, ms.left)
	in.Hold(core.ActionRight, ms.right)
}
