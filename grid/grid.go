// Package grid computes and draws the grid lines of a cartesian chart from
// its resolved main scales.
package grid

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/scales"
)

// Scales is the part of scales.Service the grid reads.
type Scales interface {
	MainXPosition() scales.AxisPosition
	MainYPosition() scales.AxisPosition
	Ticks(p scales.AxisPosition) []scales.Tick
}

// Line is one grid line at a pixel coordinate across the plot area.
type Line struct {
	Pos   float64
	Minor bool
}

// Grid holds the vertical lines (at X ticks) and horizontal lines (at Y
// ticks) of a chart.
type Grid struct {
	X, Y  []Line
	Style Style
}

// New computes the grid lines of the main X and Y scale of s. An axis
// without scale contributes no lines.
func New(s Scales) *Grid {
	return &Grid{
		X:     lines(s.Ticks(s.MainXPosition())),
		Y:     lines(s.Ticks(s.MainYPosition())),
		Style: DefaultStyle(),
	}
}

func lines(ticks []scales.Tick) []Line {
	out := make([]Line, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, Line{Pos: t.Pos, Minor: t.Minor})
	}
	return out
}

// Draw fills the backdrop of c and strokes the grid lines. Pixel
// coordinates are offsets from c.Min, so the X and Y scales should have
// been built with ranges spanning the width and height of c.
func (g *Grid) Draw(c draw.Canvas) {
	if g.Style.Background != nil {
		c.SetColor(g.Style.Background)
		c.Fill(c.Rectangle.Path())
	}

	for _, l := range g.X {
		x := c.Min.X + vg.Length(l.Pos)
		c.StrokeLine2(g.style(l), x, c.Min.Y, x, c.Max.Y)
	}
	for _, l := range g.Y {
		y := c.Min.Y + vg.Length(l.Pos)
		c.StrokeLine2(g.style(l), c.Min.X, y, c.Max.X, y)
	}
}

func (g *Grid) style(l Line) draw.LineStyle {
	if l.Minor {
		return g.Style.Minor
	}
	return g.Style.Major
}
