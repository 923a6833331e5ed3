package shooter

import (
	"fmt"

	"github.com/vovakirdan/seal-arcade/internal/assets"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

// HUD layout in canvas pixels.
const (
	hudFontSize      = 20
	hudX             = 10
	scoreY           = 30
	livesY           = 60
	gameOverFontSize = 40
	gameOverOffsetX  = 100 // Banner starts this far left of the canvas centre
)

var bulletColor = core.ColorBlue

// Renderer draws a shooter State onto a surface.
// Sprites that have not finished loading are skipped.
type Renderer struct {
	Player *assets.Image
	Enemy  *assets.Image
}

// Draw renders one frame. score is the value shown in the HUD, which may lag
// behind st.Score while the counter animates.
func (r *Renderer) Draw(dst core.Surface, st State, score int) {
	core.ClearSurface(dst)
	w, h := dst.Size()

	if img, ok := r.Player.Get(); ok {
		p := st.Player
		dst.DrawImage(img, p.X, p.Y, p.W, p.H)
	}

	if img, ok := r.Enemy.Get(); ok {
		for _, e := range st.Enemies {
			dst.DrawImage(img, e.X, e.Y, e.W, e.H)
		}
	}

	for _, b := range st.Bullets {
		dst.FillRect(b.X, b.Y, b.W, b.H, bulletColor)
	}

	dst.FillText(fmt.Sprintf("Score: %d", score), hudX, scoreY, hudFontSize, core.ColorWhite)
	dst.FillText(fmt.Sprintf("Lives: %d", st.Lives), hudX, livesY, hudFontSize, core.ColorWhite)

	if st.GameOver {
		dst.FillText("GAME OVER", w/2-gameOverOffsetX, h/2, gameOverFontSize, core.ColorBlue)
	}
}
