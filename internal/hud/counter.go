// Package hud holds small animated widgets shared by the game HUDs.
package hud

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Counter is a number display that rolls towards its target value instead of
// jumping. The underlying game score is never affected.
type Counter struct {
	duration float32
	tween    *gween.Tween
	target   int
	shown    float32
}

// NewCounter creates a counter that reaches a new target within duration
// seconds.
func NewCounter(duration float32) *Counter {
	return &Counter{duration: duration}
}

// Reset jumps straight to v with no animation.
func (c *Counter) Reset(v int) {
	c.tween = nil
	c.target = v
	c.shown = float32(v)
}

// SetTarget starts rolling from the current value to v.
// Setting the current target again is a no-op.
func (c *Counter) SetTarget(v int) {
	if v == c.target {
		return
	}
	c.target = v
	if c.duration <= 0 {
		c.shown = float32(v)
		c.tween = nil
		return
	}
	c.tween = gween.New(c.shown, float32(v), c.duration, ease.OutQuad)
}

// Update advances the animation by dt seconds.
func (c *Counter) Update(dt float32) {
	if c.tween == nil {
		return
	}
	cur, finished := c.tween.Update(dt)
	c.shown = cur
	if finished {
		c.shown = float32(c.target)
		c.tween = nil
	}
}

// Value returns the number to display.
func (c *Counter) Value() int {
	return int(math.Round(float64(c.shown)))
}

// Target returns the value the counter is rolling towards.
func (c *Counter) Target() int {
	return c.target
}

// Animating reports whether the counter has not yet reached its target.
func (c *Counter) Animating() bool {
	return c.tween != nil
}
