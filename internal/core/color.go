package core

import (
	"fmt"
	"strconv"
)

// Color is a straight-alpha 8-bit RGBA color.
// It implements image/color.Color so frontends can pass it through unchanged.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA implements image/color.Color (alpha-premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// IsZero reports whether c is the zero (fully transparent black) color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Named colors used by the game renderers.
var (
	ColorDefault = Color{}
	ColorBlack   = RGB(0x00, 0x00, 0x00)
	ColorWhite   = RGB(0xFF, 0xFF, 0xFF)
	ColorRed     = RGB(0xFF, 0x00, 0x00)
	ColorOrange  = RGB(0xFF, 0x7F, 0x00)
	ColorYellow  = RGB(0xFF, 0xFF, 0x00)
	ColorGreen   = RGB(0x00, 0xFF, 0x00)
	ColorBlue    = RGB(0x00, 0x00, 0xFF)
	ColorNavy    = RGB(0x16, 0x27, 0x4A)
	ColorGray    = RGB(0x8A, 0x8A, 0x8A)
)

// ParseHex parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
