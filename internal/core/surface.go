package core

import "image"

// Surface is a 2D drawing context in canvas pixels.
// Renderers draw through it without knowing whether the target is a terminal
// character grid or a real window.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (w, h float64)

	// ClearRect resets the given area to the background.
	ClearRect(x, y, w, h float64)

	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle paints a solid disc centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// DrawImage draws img scaled into the destination rectangle.
	DrawImage(img image.Image, x, y, w, h float64)

	// FillText draws text with its baseline at y. size is the font size in pixels.
	FillText(text string, x, y, size float64, c Color)
}

// ClearSurface clears the entire surface.
func ClearSurface(s Surface) {
	w, h := s.Size()
	s.ClearRect(0, 0, w, h)
}
