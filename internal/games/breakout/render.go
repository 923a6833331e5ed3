package breakout

import (
	"fmt"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// HUD layout in canvas pixels.
const (
	hudFontSize    = 20
	hudY           = 20
	scoreX         = 10
	livesInset     = 100 // Lives text starts this far from the right edge
	bannerFontSize = 48
	bannerOffsetX  = 100
)

var (
	paddleColor = core.ColorGreen
	ballColor   = core.ColorWhite
)

// Renderer draws a breakout State onto a surface.
type Renderer struct{}

// Draw renders one frame. score is the value shown in the HUD, which may lag
// behind st.Score while the counter animates.
func (Renderer) Draw(dst core.Surface, st State, score int) {
	core.ClearSurface(dst)
	w, h := dst.Size()

	for _, b := range st.Bricks {
		if b.Visible {
			dst.FillRect(b.X, b.Y, b.W, b.H, b.Color)
		}
	}

	p := st.Paddle
	dst.FillRect(p.X, p.Y, p.W, p.H, paddleColor)
	dst.FillCircle(st.Ball.X, st.Ball.Y, st.Ball.R, ballColor)

	dst.FillText(fmt.Sprintf("Score: %d", score), scoreX, hudY, hudFontSize, core.ColorWhite)
	dst.FillText(fmt.Sprintf("Lives: %d", st.Lives), w-livesInset, hudY, hudFontSize, core.ColorWhite)

	if st.GameOver {
		banner := "Game Over!"
		if st.Outcome == core.OutcomeWin {
			banner = "You Win!"
		}
		dst.FillText(banner, w/2-bannerOffsetX, h/2, bannerFontSize, core.ColorWhite)
	}
}
