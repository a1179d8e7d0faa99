package grid

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Grid is drawn.
type Style struct {
	// Background fills the plot area before the lines are drawn;
	// nil leaves it untouched.
	Background color.Color

	Major draw.LineStyle
	Minor draw.LineStyle
}

// DefaultStyle mimics the appearance of ggplot2: white lines on a light
// gray backdrop.
func DefaultStyle() Style {
	s := Style{}
	s.Background = color.Gray16{0xeeee}

	s.Major.Color = color.White
	s.Major.Width = vg.Length(1)
	s.Minor.Color = color.White
	s.Minor.Width = vg.Length(0.5)

	return s
}
