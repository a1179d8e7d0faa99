package scales

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is the resolved mapping of one axis position from its data domain
// to a pixel range. Scales are immutable; Service.Update replaces them.
type Scale interface {
	// Type is the scale type the scale was built for.
	Type() ScaleType

	// Domain returns the domain the scale was built with.
	Domain() Domain

	// Range returns the pixel range.
	Range() Interval

	// Map maps v to a pixel coordinate. For Labels scales this is the
	// start of v's band.
	Map(v interface{}) (float64, error)

	// Project maps v to the pixel coordinate a mark is drawn at: the
	// center of the band for Labels scales, Map otherwise.
	Project(v interface{}) (float64, error)

	// Ticks returns at most n major ticks (n <= 0: no limit) and the
	// minor ticks in between.
	Ticks(n int) []Tick
}

// Tick is a tick mark at a pixel coordinate.
type Tick struct {
	Pos   float64
	Label string
	Minor bool
}

// Params are the type specific parameters of a scale.
type Params struct {
	// Base is the logarithm base of Log scales; zero means 10.
	Base int

	// TimeLayouts are the layouts Time scales parse strings with; nil
	// means config.DefaultTimeLayouts.
	TimeLayouts []string
}

// builder constructs the scale for one scale type.
type builder func(d Domain, r Interval, p Params) (Scale, error)

var builders = [numScaleTypes]builder{
	Linear: buildLinear,
	Log:    buildLog,
	Labels: buildBand,
	Time:   buildTime,
}

// Build returns the scale of type st over the domain d bound to the pixel
// range r.
func Build(st ScaleType, d Domain, r Interval, p Params) (Scale, error) {
	if st < 0 || st >= numScaleTypes {
		return nil, errors.Wrapf(ErrUnknownScaleType, "%d", int(st))
	}
	if d.Type != st {
		return nil, errors.Wrapf(ErrInvalidDomain, "%s domain for %s scale", d.Type, st)
	}
	return builders[st](d, r, p)
}

func buildLinear(d Domain, r Interval, _ Params) (Scale, error) {
	return &continuous{typ: Linear, domain: d, rng: r, trans: linearTrans(d.Interval)}, nil
}

func buildLog(d Domain, r Interval, p Params) (Scale, error) {
	base := p.Base
	if base == 0 {
		base = 10
	}
	if base < 2 {
		return nil, errors.Wrapf(ErrInvalidBase, "%d", base)
	}
	t, err := logTrans(d.Interval, base)
	if err != nil {
		return nil, err
	}
	return &continuous{typ: Log, domain: d, rng: r, trans: t}, nil
}

func buildTime(d Domain, r Interval, p Params) (Scale, error) {
	return &continuous{typ: Time, domain: d, rng: r, trans: timeTrans(d.Interval, p.TimeLayouts)}, nil
}

func buildBand(d Domain, r Interval, _ Params) (Scale, error) {
	return newBandScale(d, r), nil
}

// continuous implements the Linear, Log and Time scales.
type continuous struct {
	typ    ScaleType
	domain Domain
	rng    Interval
	trans  transformation
}

func (c *continuous) Type() ScaleType { return c.typ }
func (c *continuous) Domain() Domain  { return c.domain }
func (c *continuous) Range() Interval { return c.rng }
func (c *continuous) String() string  { return c.typ.String() + " " + c.domain.String() }

func (c *continuous) mapFloat(x float64) float64 { return c.rng.lerp(c.trans.unit(x)) }

// Map fails for values outside the transformation's domain, like
// non-positive values on a positive Log scale.
func (c *continuous) Map(v interface{}) (float64, error) {
	x, err := c.trans.coerce(v)
	if err != nil {
		return math.NaN(), err
	}
	y := c.mapFloat(x)
	if math.IsNaN(y) {
		return math.NaN(), errors.Wrapf(ErrBadValue, "%g cannot be mapped by %s scale %s", x, c.typ, c.domain)
	}
	return y, nil
}

func (c *continuous) Project(v interface{}) (float64, error) { return c.Map(v) }

func (c *continuous) Ticks(n int) []Tick {
	lo, hi := c.domain.Min, c.domain.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo == hi {
		return nil
	}
	var ticks []Tick
	for _, t := range thin(c.trans.ticker.Ticks(lo, hi), n) {
		ticks = append(ticks, Tick{
			Pos:   c.mapFloat(t.Value),
			Label: t.Label,
			Minor: t.IsMinor(),
		})
	}
	return ticks
}

// BandScale is the Labels scale: it partitions its pixel range into equal
// bands, one per category, in domain order.
type BandScale struct {
	domain Domain
	rng    Interval
	index  map[string]int
	start  float64
	step   float64
	flip   bool
}

func newBandScale(d Domain, r Interval) *BandScale {
	b := &BandScale{rng: r, index: make(map[string]int)}
	labels := make([]string, 0, len(d.Labels))
	for _, l := range d.Labels {
		if _, dup := b.index[l]; dup {
			continue
		}
		b.index[l] = len(labels)
		labels = append(labels, l)
	}
	b.domain = labelDomain(labels)

	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
		b.flip = true
	}
	n := len(labels)
	if n < 1 {
		n = 1
	}
	b.start = lo
	b.step = (hi - lo) / float64(n)
	return b
}

func (b *BandScale) Type() ScaleType { return Labels }
func (b *BandScale) Domain() Domain  { return b.domain }
func (b *BandScale) Range() Interval { return b.rng }

// Step is the distance between the starts of adjacent bands.
func (b *BandScale) Step() float64 { return b.step }

// Bandwidth is the width of one band. Bands are not padded, so it
// equals Step.
func (b *BandScale) Bandwidth() float64 { return b.step }

func (b *BandScale) Map(v interface{}) (float64, error) {
	label := toLabel(v)
	i, ok := b.index[label]
	if !ok {
		return math.NaN(), errors.Wrapf(ErrUnknownCategory, "%q", label)
	}
	if b.flip {
		i = len(b.domain.Labels) - 1 - i
	}
	return b.start + float64(i)*b.step, nil
}

func (b *BandScale) Project(v interface{}) (float64, error) {
	x, err := b.Map(v)
	return x + b.step/2, err
}

// Ticks returns one tick per category at the band centers; n is ignored.
func (b *BandScale) Ticks(n int) []Tick {
	ticks := make([]Tick, 0, len(b.domain.Labels))
	for _, l := range b.domain.Labels {
		x, _ := b.Project(l)
		ticks = append(ticks, Tick{Pos: x, Label: l})
	}
	return ticks
}

func (b *BandScale) String() string { return "labels " + b.domain.String() }

// ----------------------------------------------------------------------------
// Domain

// Domain is the data extent of a scale: an ordered pair of bounds for
// continuous scales or an ordered set of labels for Labels scales.
type Domain struct {
	Type ScaleType

	// Interval holds the bounds of Linear and Log domains and the bounds
	// of Time domains in Unix milliseconds.
	Interval

	// Start and End are the bounds of a Time domain.
	Start, End time.Time

	// Labels are the categories of a Labels domain.
	Labels []string
}

func numericDomain(st ScaleType, lo, hi float64) Domain {
	return Domain{Type: st, Interval: Interval{lo, hi}}
}

func timeDomain(start, end time.Time) Domain {
	return Domain{
		Type:     Time,
		Interval: Interval{timeToMillis(start), timeToMillis(end)},
		Start:    start,
		End:      end,
	}
}

func labelDomain(labels []string) Domain {
	return Domain{Type: Labels, Interval: unsetInterval(), Labels: labels}
}

func (d Domain) String() string {
	switch d.Type {
	case Labels:
		return "[" + strings.Join(d.Labels, ", ") + "]"
	case Time:
		return fmt.Sprintf("[%s, %s]", d.Start.Format(time.RFC3339), d.End.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

func (i Interval) Equal(j Interval) bool {
	sameEdge := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return sameEdge(i.Min, j.Min) && sameEdge(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known scale types.
type ScaleType int

const (
	Linear ScaleType = iota
	Log
	Labels
	Time
	numScaleTypes
)

var scaleTypeNames = [numScaleTypes]string{"linear", "log", "labels", "time"}

// String returns the name of st.
func (st ScaleType) String() string {
	if st < 0 || st >= numScaleTypes {
		return fmt.Sprintf("ScaleType(%d)", int(st))
	}
	return scaleTypeNames[st]
}

// ParseScaleType converts a scale type name. The empty string is Linear.
func ParseScaleType(s string) (ScaleType, error) {
	if s == "" {
		return Linear, nil
	}
	for i, n := range scaleTypeNames {
		if strings.EqualFold(s, n) {
			return ScaleType(i), nil
		}
	}
	return Linear, errors.Wrapf(ErrUnknownScaleType, "%q", s)
}

// ordersData reports whether axes of type st take the domain role.
func (st ScaleType) ordersData() bool {
	return st == Labels || st == Time
}
