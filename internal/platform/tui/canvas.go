package tui

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// Glyphs used when rasterising shapes onto the character grid.
const (
	blockRune  = '█'
	discRune   = '●'
	spriteRune = '▓'
)

// darkThreshold is the luminance below which sprite pixels are lifted to gray
// so black artwork stays visible on a dark terminal.
const darkThreshold = 0x30

// Canvas is a core.Surface that rasterises a pixel canvas onto a Screen.
// The canvas is stretched to cover the whole screen; a shape paints every cell
// whose centre it covers. Shapes smaller than a cell still paint the cell
// under their centre so bullets and balls never vanish.
type Canvas struct {
	screen *core.Screen
	w, h   float64
}

// NewCanvas creates a canvas of w×h pixels drawing onto screen.
func NewCanvas(screen *core.Screen, w, h float64) *Canvas {
	return &Canvas{screen: screen, w: w, h: h}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// scale returns screen cells per canvas pixel on each axis.
func (c *Canvas) scale() (sx, sy float64) {
	if c.w <= 0 || c.h <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.w, float64(c.screen.Height()) / c.h
}

// ToCanvasX converts a screen column to the canvas x of its centre.
func (c *Canvas) ToCanvasX(col int) float64 {
	sx, _ := c.scale()
	if sx == 0 {
		return 0
	}
	return (float64(col) + 0.5) / sx
}

// cell returns the screen cell containing canvas point (x, y).
func (c *Canvas) cell(x, y float64) (col, row int) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return -1, -1
	}
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// cellCenter returns the canvas point at the centre of a screen cell.
func (c *Canvas) cellCenter(col, row int) (float64, float64) {
	sx, sy := c.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// covered calls fn for every cell whose centre lies inside the rectangle and
// reports whether any cell matched.
func (c *Canvas) covered(x, y, w, h float64, fn func(col, row int)) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return false
	}

	c0 := max(int(math.Floor(x*sx)), 0)
	c1 := min(int(math.Ceil((x+w)*sx)), c.screen.Width())
	r0 := max(int(math.Floor(y*sy)), 0)
	r1 := min(int(math.Ceil((y+h)*sy)), c.screen.Height())

	area := core.NewRect(x, y, w, h)
	hit := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cx, cy := c.cellCenter(col, row)
			if cx >= area.X && cx < area.Right() && cy >= area.Y && cy < area.Bottom() {
				fn(col, row)
				hit = true
			}
		}
	}
	return hit
}

// ClearRect blanks the cells covered by the rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.covered(x, y, w, h, func(col, row int) {
		c.screen.SetCell(col, row, core.Cell{Rune: ' '})
	})
}

// FillRect paints the cells covered by the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	cell := core.Cell{Rune: blockRune, Color: clr}
	ok := c.covered(x, y, w, h, func(col, row int) {
		c.screen.SetCell(col, row, cell)
	})
	if !ok && w > 0 && h > 0 {
		col, row := c.cell(x+w/2, y+h/2)
		c.screen.SetCell(col, row, cell)
	}
}

// FillCircle paints the cells whose centres lie inside the disc.
func (c *Canvas) FillCircle(cx, cy, r float64, clr core.Color) {
	if r <= 0 {
		return
	}
	cell := core.Cell{Rune: discRune, Color: clr}
	ok := c.covered(cx-r, cy-r, 2*r, 2*r, func(col, row int) {
		px, py := c.cellCenter(col, row)
		if dx, dy := px-cx, py-cy; dx*dx+dy*dy <= r*r {
			c.screen.SetCell(col, row, cell)
		}
	})
	if !ok {
		col, row := c.cell(cx, cy)
		c.screen.SetCell(col, row, cell)
	}
}

// DrawImage samples img at each covered cell centre. Transparent pixels are
// skipped.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	sample := func(px, py float64) (core.Cell, bool) {
		ix := b.Min.X + min(int((px-x)/w*float64(b.Dx())), b.Dx()-1)
		iy := b.Min.Y + min(int((py-y)/h*float64(b.Dy())), b.Dy()-1)
		return spriteCell(img.At(ix, iy))
	}

	ok := c.covered(x, y, w, h, func(col, row int) {
		px, py := c.cellCenter(col, row)
		if cell, opaque := sample(px, py); opaque {
			c.screen.SetCell(col, row, cell)
		}
	})
	if !ok {
		cx, cy := x+w/2, y+h/2
		if cell, opaque := sample(cx, cy); opaque {
			col, row := c.cell(cx, cy)
			c.screen.SetCell(col, row, cell)
		}
	}
}

// spriteCell converts an image pixel to a screen cell.
func spriteCell(px color.Color) (core.Cell, bool) {
	r, g, b, a := px.RGBA()
	if a < 0x8000 {
		return core.Cell{}, false
	}
	// Undo premultiplication.
	r8 := uint8(r * 0xff / a)
	g8 := uint8(g * 0xff / a)
	b8 := uint8(b * 0xff / a)

	clr := core.RGB(r8, g8, b8)
	lum := (299*int(r8) + 587*int(g8) + 114*int(b8)) / 1000
	if lum < darkThreshold {
		clr = core.ColorGray
	}
	return core.Cell{Rune: spriteRune, Color: clr}, true
}

// FillText writes text starting at the cell containing x. The baseline y is
// mapped to the row holding the middle of the glyphs. Text is not scaled.
func (c *Canvas) FillText(text string, x, y, size float64, clr core.Color) {
	if c.screen.Height() == 0 || c.w <= 0 || c.h <= 0 {
		return
	}
	col, row := c.cell(x, y-size/2)
	row = core.ClampInt(row, 0, c.screen.Height()-1)
	c.screen.DrawTextColor(max(col, 0), row, text, clr)
}
