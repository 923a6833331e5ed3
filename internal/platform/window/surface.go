package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/seal-arcade/internal/core"
)

// background is what ClearRect paints.
var background = color.RGBA{0, 0, 0, 0xff}

// surface draws the game canvas onto an Ebitengine image at native pixels.
type surface struct {
	dst    *ebiten.Image
	w, h   float64
	font   *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	images map[image.Image]*ebiten.Image
}

// newSurface creates a surface for a w x h canvas using the Go regular font.
func newSurface(w, h float64) (*surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &surface{
		w:      w,
		h:      h,
		font:   src,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[image.Image]*ebiten.Image),
	}, nil
}

// target points the surface at the image for the current frame.
func (s *surface) target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *surface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), background, false)
}

func (s *surface) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toRGBA(c), true)
}

func (s *surface) FillCircle(cx, cy, r float64, c core.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), toRGBA(c), true)
}

// DrawImage scales img into the destination rectangle. Decoded images are
// uploaded to the GPU once and reused.
func (s *surface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}

	b := eimg.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(eimg, op)
}

// FillText draws text with its baseline at y.
func (s *surface) FillText(str string, x, y, size float64, c core.Color) {
	if str == "" || size <= 0 {
		return
	}
	face := s.face(size)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y-face.Metrics().HAscent)
	opts.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(s.dst, str, face, opts)
}

func (s *surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.font, Size: size}
	s.faces[size] = f
	return f
}

// toRGBA converts a game color; the default color draws as white.
func toRGBA(c core.Color) color.RGBA {
	if c.IsZero() {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
		A: c.A,
	}
}
