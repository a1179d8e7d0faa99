package grid

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/scales"
)

// Projector is the part of scales.Service a Panel maps data with.
type Projector interface {
	Scales
	Project(p scales.AxisPosition, datum interface{}) (float64, error)
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area of a chart: a canvas and the scales mapping
// data onto it. The main scales should have been built with ranges
// spanning the width and height of Canvas.
type Panel struct {
	Canvas draw.Canvas
	Scales Projector
}

// MapXY maps datum to a canvas point using the main X and Y scale.
func (p *Panel) MapXY(datum interface{}) (vg.Point, error) {
	x, err := p.Scales.Project(p.Scales.MainXPosition(), datum)
	if err != nil {
		return vg.Point{}, errors.Wrap(err, "x")
	}
	y, err := p.Scales.Project(p.Scales.MainYPosition(), datum)
	if err != nil {
		return vg.Point{}, errors.Wrap(err, "y")
	}
	return vg.Point{X: p.Canvas.Min.X + vg.Length(x), Y: p.Canvas.Min.Y + vg.Length(y)}, nil
}

// InRange reports whether pt lies within the canvas of p.
func (p *Panel) InRange(pt vg.Point) bool {
	r := canonicRectangle(p.Canvas.Rectangle)
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Draw draws the grid of the panel's main scales.
func (p *Panel) Draw() {
	New(p.Scales).Draw(p.Canvas)
}

// canonicRectangle returns r with its Min point having smaller coordinates
// than its Max point.
func canonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
