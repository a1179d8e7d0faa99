package scales

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ----------------------------------------------------------------------------
// AxisPosition

// AxisPosition is one of the four sides of a cartesian chart.
type AxisPosition int

const (
	Top AxisPosition = iota
	Right
	Bottom
	Left
	numPositions

	// NoPosition is the position of an unresolved axis role.
	NoPosition AxisPosition = -1
)

// Positions lists all axis positions in resolution order.
var Positions = [numPositions]AxisPosition{Top, Right, Bottom, Left}

var positionNames = [numPositions]string{"top", "right", "bottom", "left"}

func (p AxisPosition) String() string {
	if p < 0 || p >= numPositions {
		return "none"
	}
	return positionNames[p]
}

// Horizontal reports whether p is the top or bottom position.
func (p AxisPosition) Horizontal() bool { return p == Top || p == Bottom }

// Vertical reports whether p is the left or right position.
func (p AxisPosition) Vertical() bool { return p == Left || p == Right }

// ParsePosition converts a name like "left" to its AxisPosition.
func ParsePosition(s string) (AxisPosition, error) {
	for i, n := range positionNames {
		if strings.EqualFold(s, n) {
			return AxisPosition(i), nil
		}
	}
	return NoPosition, errors.Wrapf(ErrUnknownPosition, "%q", s)
}

// ----------------------------------------------------------------------------
// Options

// Options is the part of a chart configuration read by the scale engine.
type Options struct {
	Axes      Axes             `yaml:"axes"`
	TimeScale TimeScaleOptions `yaml:"timeScale"`
	Grid      GridOptions      `yaml:"grid"`
}

// Axes holds the configuration of up to four axes. A nil entry means the
// position is not configured.
type Axes struct {
	Top    *AxisOptions `yaml:"top"`
	Right  *AxisOptions `yaml:"right"`
	Bottom *AxisOptions `yaml:"bottom"`
	Left   *AxisOptions `yaml:"left"`
}

// At returns the configuration at position p or nil.
func (a *Axes) At(p AxisPosition) *AxisOptions {
	switch p {
	case Top:
		return a.Top
	case Right:
		return a.Right
	case Bottom:
		return a.Bottom
	case Left:
		return a.Left
	}
	return nil
}

// AxisOptions configures a single axis.
type AxisOptions struct {
	// ScaleType defaults to Linear.
	ScaleType ScaleType `yaml:"scaleType"`

	// MapsTo is the record field the axis values are read from.
	MapsTo string `yaml:"mapsTo"`

	// Domain overrides domain inference if non-empty: a list of labels
	// for Labels scales, a [min, max] pair otherwise.
	Domain []interface{} `yaml:"domain"`

	// Main marks the right (top) axis as the primary vertical
	// (horizontal) axis.
	Main bool `yaml:"main"`

	// Stacked sums the grouped values per key before taking the extent.
	Stacked bool `yaml:"stacked"`

	// IncludeZero forces a Linear domain to contain 0.
	IncludeZero bool `yaml:"includeZero"`

	// Base of a logarithmic scale, 10 if unset. It must be at least 2.
	Base int `yaml:"base"`
}

// TimeScaleOptions controls temporal domains.
type TimeScaleOptions struct {
	// AddSpaceOnEdges is the number of calendar units added to both
	// ends of a time domain. Zero disables edge expansion.
	AddSpaceOnEdges int `yaml:"addSpaceOnEdges"`
}

// GridOptions carries per chart tick counts; zero means use the defaults.
type GridOptions struct {
	X TickOptions `yaml:"x"`
	Y TickOptions `yaml:"y"`
}

type TickOptions struct {
	NumberOfTicks int `yaml:"numberOfTicks"`
}

// ParseOptions decodes a YAML (or JSON) chart configuration.
func ParseOptions(buf []byte) (*Options, error) {
	opts := &Options{}
	if err := yaml.Unmarshal(buf, opts); err != nil {
		return nil, errors.Wrap(err, "parsing chart options")
	}
	return opts, nil
}

// UnmarshalYAML reads a scale type from its name.
func (st *ScaleType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	t, err := ParseScaleType(name)
	if err != nil {
		return err
	}
	*st = t
	return nil
}

// MarshalYAML writes the name of st.
func (st ScaleType) MarshalYAML() (interface{}, error) {
	return st.String(), nil
}
