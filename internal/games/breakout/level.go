// Package breakout implements Brick Breaker: a pointer-steered paddle, one
// ball and a fixed grid of bricks.
package breakout

import (
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
)

// Brick is one cell of the grid. Visible goes from true to false exactly
// once, when the brick is destroyed.
type Brick struct {
	core.Rect
	Row, Col int
	Color    core.Color
	Visible  bool
}

// Level is the brick grid for one session.
type Level struct {
	Rows, Cols int
	Bricks     []Brick // Row-major
}

// NewLevel lays out the brick grid described by cfg.
// Row colours cycle through cfg.Colors; unparsable or missing colours
// fall back to red.
func NewLevel(cfg config.BreakoutBricks) *Level {
	colors := make([]core.Color, 0, len(cfg.Colors))
	for _, hex := range cfg.Colors {
		c, err := core.ParseHex(hex)
		if err != nil {
			c = core.ColorRed
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorRed)
	}

	l := &Level{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			x := float64(col)*(cfg.Width+cfg.Padding) + cfg.Padding
			y := float64(row)*(cfg.Height+cfg.Padding) + cfg.Padding + cfg.OffsetTop
			l.Bricks = append(l.Bricks, Brick{
				Rect:    core.NewRect(x, y, cfg.Width, cfg.Height),
				Row:     row,
				Col:     col,
				Color:   colors[row%len(colors)],
				Visible: true,
			})
		}
	}
	return l
}

// At returns the brick at row, col.
func (l *Level) At(row, col int) *Brick {
	return &l.Bricks[row*l.Cols+col]
}

// CountVisible returns the number of bricks still standing.
func (l *Level) CountVisible() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Visible {
			count++
		}
	}
	return count
}

// Clone creates a deep copy of the level.
func (l *Level) Clone() *Level {
	clone := &Level{
		Rows:   l.Rows,
		Cols:   l.Cols,
		Bricks: make([]Brick, len(l.Bricks)),
	}
	copy(clone.Bricks, l.Bricks)
	return clone
}
