package breakout

import "github.com/vovakirdan/seal-arcade/internal/core"

// Ball is the single ball in play. Position is the centre.
type Ball struct {
	core.Circle
	DX, DY float64 // Velocity per tick
	Speed  float64 // Re-serve speed on both axes
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle. It only moves horizontally.
type Paddle struct {
	core.Rect
}

// MoveTo centres the paddle on target x, keeping it inside [0, canvasW].
func (p *Paddle) MoveTo(target, canvasW float64) {
	p.X = core.Clamp(target-p.W/2, 0, canvasW-p.W)
}

// bounceWalls reflects the ball off the left, right and top edges.
// The bottom edge is open.
func bounceWalls(b *Ball, canvasW float64) {
	if b.X+b.R > canvasW || b.X-b.R < 0 {
		b.BounceX()
	}
	if b.Y-b.R < 0 {
		b.BounceY()
	}
}

// fellOff reports whether the ball's bottom edge is past the floor.
func fellOff(b *Ball, canvasH float64) bool {
	return b.Y+b.R > canvasH
}

// deflect applies the paddle response: horizontal speed depends only on how
// far from the paddle centre the ball hit, scaled to maxDX, and vertical speed
// is reversed. It returns the normalised hit offset in [-1, 1] for hits
// within the paddle span.
func deflect(b *Ball, p Paddle, maxDX float64) float64 {
	offset := (b.X - p.CenterX()) / (p.W / 2)
	b.DX = offset * maxDX
	b.BounceY()
	return offset
}
