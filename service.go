package scales

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vdobler/scales/config"
	"github.com/vdobler/scales/data"
)

// Model is the chart data model the scales are computed from. The
// service never modifies or retains what Model returns beyond one Update.
type Model interface {
	Options() *Options
	DisplayData() []data.Record
	DataValuesGroupedByKeys() []data.KeyedValues
}

type tableModel struct {
	*data.Table
	opts *Options
}

func (m tableModel) Options() *Options { return m.opts }

// NewModel returns a Model with fixed options over the records of t.
func NewModel(opts *Options, t *data.Table) Model {
	return tableModel{Table: t, opts: opts}
}

// ----------------------------------------------------------------------------
// Service

// Service resolves the axis roles, the orientation and one scale per
// configured axis position of a cartesian chart.
//
// A Service is not safe for concurrent use: Update and all queries must be
// serialized by the caller.
type Service struct {
	model    Model
	defaults config.Defaults
	log      *zap.SugaredLogger
	ranges   [numPositions]Interval

	state
}

// state is everything one Update computes. It is replaced as a whole.
type state struct {
	opts        *Options
	domainPos   AxisPosition
	rangePos    AxisPosition
	orientation Orientation
	configured  [numPositions]bool
	types       [numPositions]ScaleType
	scales      [numPositions]Scale
	errs        [numPositions]error
}

// An Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger of the service.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Service) { s.log = l }
}

// WithRange sets the pixel range of the scale at position p.
func WithRange(p AxisPosition, r Interval) Option {
	return func(s *Service) { s.SetRange(p, r) }
}

// New returns a service computing scales for m. All pixel ranges default
// to [0,1]. Call Update before querying scales.
func New(m Model, defaults config.Defaults, opts ...Option) *Service {
	s := &Service{
		model:    m,
		defaults: defaults,
		log:      zap.NewNop().Sugar(),
		state:    state{domainPos: NoPosition, rangePos: NoPosition},
	}
	for i := range s.ranges {
		s.ranges[i] = Interval{0, 1}
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SetRange sets the pixel range of the scale at p. It takes effect with
// the next Update.
func (s *Service) SetRange(p AxisPosition, r Interval) {
	if p >= 0 && p < numPositions {
		s.ranges[p] = r
	}
}

// Update resolves roles and orientation and rebuilds the scales of all
// configured positions. A position whose scale cannot be built is left
// without scale; its error is part of the returned error and available
// from Err. The other positions are not affected.
func (s *Service) Update() error {
	opts := s.model.Options()
	if opts == nil {
		opts = &Options{}
	}

	next := state{opts: opts}
	next.domainPos, next.rangePos = resolveRoles(&opts.Axes)
	next.orientation = orientationOf(next.domainPos, next.rangePos)
	s.log.Debugw("resolved axis roles",
		"domain", next.domainPos.String(),
		"range", next.rangePos.String(),
		"orientation", next.orientation.String())

	var combined error
	for _, p := range Positions {
		ax := opts.Axes.At(p)
		if ax == nil {
			continue
		}
		next.configured[p] = true
		next.types[p] = ax.ScaleType

		sc, err := s.createScale(p, ax, opts)
		if err != nil {
			err = errors.Wrapf(err, "%s axis", p)
			next.errs[p] = err
			combined = multierr.Append(combined, err)
			s.log.Warnw("cannot build scale", "position", p.String(), "error", err)
			continue
		}
		next.scales[p] = sc
		s.log.Debugw("built scale",
			"position", p.String(),
			"type", ax.ScaleType.String(),
			"domain", sc.Domain().String())
	}

	s.state = next
	return combined
}

func (s *Service) createScale(p AxisPosition, ax *AxisOptions, opts *Options) (Scale, error) {
	layouts := s.defaults.TimeLayouts
	d, err := inferDomain(ax, s.model, s.defaults.PaddingRatio, opts.TimeScale.AddSpaceOnEdges, layouts)
	if err != nil {
		return nil, err
	}
	return Build(ax.ScaleType, d, s.ranges[p], Params{Base: ax.Base, TimeLayouts: layouts})
}

// DomainAxisPosition returns the position of the domain axis or
// NoPosition before the first Update.
func (s *Service) DomainAxisPosition() AxisPosition { return s.domainPos }

// RangeAxisPosition returns the position of the range axis or NoPosition
// before the first Update.
func (s *Service) RangeAxisPosition() AxisPosition { return s.rangePos }

func (s *Service) Orientation() Orientation { return s.orientation }

// ScaleAt returns the scale at p or nil if p is not configured or its
// scale could not be built.
func (s *Service) ScaleAt(p AxisPosition) Scale {
	if p < 0 || p >= numPositions {
		return nil
	}
	return s.scales[p]
}

// ScaleTypeAt returns the scale type at p and whether p is configured.
func (s *Service) ScaleTypeAt(p AxisPosition) (ScaleType, bool) {
	if p < 0 || p >= numPositions {
		return Linear, false
	}
	return s.types[p], s.configured[p]
}

// Err returns why the scale at p could not be built, ErrNoConfiguration
// if p is not configured and nil if it was built.
func (s *Service) Err(p AxisPosition) error {
	if p < 0 || p >= numPositions {
		return errors.Wrapf(ErrUnknownPosition, "%d", int(p))
	}
	if !s.configured[p] {
		return errors.Wrapf(ErrNoConfiguration, "%s axis", p)
	}
	return s.errs[p]
}

func (s *Service) DomainScale() Scale { return s.ScaleAt(s.domainPos) }
func (s *Service) RangeScale() Scale  { return s.ScaleAt(s.rangePos) }

// MainXPosition returns whichever of the domain and range position is
// horizontal.
func (s *Service) MainXPosition() AxisPosition {
	for _, p := range []AxisPosition{s.domainPos, s.rangePos} {
		if p.Horizontal() {
			return p
		}
	}
	return NoPosition
}

// MainYPosition returns whichever of the domain and range position is
// vertical.
func (s *Service) MainYPosition() AxisPosition {
	for _, p := range []AxisPosition{s.domainPos, s.rangePos} {
		if p.Vertical() {
			return p
		}
	}
	return NoPosition
}

func (s *Service) MainXScale() Scale { return s.ScaleAt(s.MainXPosition()) }
func (s *Service) MainYScale() Scale { return s.ScaleAt(s.MainYPosition()) }

// Identifier returns the field the axis at p maps to.
func (s *Service) Identifier(p AxisPosition) string {
	if s.opts == nil {
		return ""
	}
	if ax := s.opts.Axes.At(p); ax != nil {
		return ax.MapsTo
	}
	return ""
}

func (s *Service) DomainIdentifier() string { return s.Identifier(s.domainPos) }
func (s *Service) RangeIdentifier() string  { return s.Identifier(s.rangePos) }

// Project returns the pixel coordinate of datum on the axis at p. If
// datum is a record holding the axis' field, the field value is
// projected, otherwise datum itself.
func (s *Service) Project(p AxisPosition, datum interface{}) (float64, error) {
	sc := s.ScaleAt(p)
	if sc == nil {
		if err := s.Err(p); err != nil {
			return math.NaN(), err
		}
		return math.NaN(), errors.Wrapf(ErrNoConfiguration, "%s axis", p)
	}
	return sc.Project(fieldValue(datum, s.Identifier(p)))
}

// DomainValue projects datum on the domain axis.
func (s *Service) DomainValue(datum interface{}) (float64, error) {
	return s.Project(s.domainPos, datum)
}

// RangeValue projects datum on the range axis.
func (s *Service) RangeValue(datum interface{}) (float64, error) {
	return s.Project(s.rangePos, datum)
}

// DataFromDomain returns the display records whose domain field equals
// value. On Time domain axes values are compared as instants, so a string
// and a time.Time denoting the same instant are equal.
func (s *Service) DataFromDomain(value interface{}) ([]data.Record, error) {
	field := s.DomainIdentifier()
	st, _ := s.ScaleTypeAt(s.domainPos)

	match := func(v interface{}) bool { return sameValue(v, value) }
	if st == Time {
		want, err := toTime(value, s.defaults.TimeLayouts)
		if err != nil {
			return nil, err
		}
		match = func(v interface{}) bool {
			t, err := toTime(v, s.defaults.TimeLayouts)
			return err == nil && t.Equal(want)
		}
	}

	var out []data.Record
	for _, r := range s.model.DisplayData() {
		if v, ok := r.Value(field); ok && match(v) {
			out = append(out, r)
		}
	}
	return out, nil
}

// NumberOfTicks returns the tick count for the axis at p: the chart's grid
// setting for its direction or the default.
func (s *Service) NumberOfTicks(p AxisPosition) int {
	var n int
	if p.Horizontal() {
		n = s.defaults.Ticks.X
		if s.opts != nil && s.opts.Grid.X.NumberOfTicks > 0 {
			n = s.opts.Grid.X.NumberOfTicks
		}
	} else {
		n = s.defaults.Ticks.Y
		if s.opts != nil && s.opts.Grid.Y.NumberOfTicks > 0 {
			n = s.opts.Grid.Y.NumberOfTicks
		}
	}
	return n
}

// Ticks returns the ticks of the scale at p or nil if there is none.
func (s *Service) Ticks(p AxisPosition) []Tick {
	sc := s.ScaleAt(p)
	if sc == nil {
		return nil
	}
	return sc.Ticks(s.NumberOfTicks(p))
}

// fieldValue returns the value of field if datum is a record holding it
// and datum otherwise.
func fieldValue(datum interface{}, field string) interface{} {
	var r data.Record
	switch d := datum.(type) {
	case data.Record:
		r = d
	case map[string]interface{}:
		r = d
	default:
		return datum
	}
	if v, ok := r.Value(field); ok {
		return v
	}
	return datum
}
