// Scale Transformations
//
// A transformation normalizes domain values onto the unit interval; the
// scale then stretches the unit interval onto its pixel range.
package scales

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
)

// A transformation bundles the coercion of raw values, the mapping of the
// domain onto [0,1] and an appropriate Ticker.
type transformation struct {
	name   string
	coerce func(v interface{}) (float64, error)
	unit   func(x float64) float64
	ticker plot.Ticker
}

// linearTrans maps from linearly. A degenerate interval maps everything
// to the middle.
func linearTrans(from Interval) transformation {
	ls := scale.Linear{Min: from.Min, Max: from.Max}
	return transformation{
		name:   "Linear",
		coerce: toFloat,
		unit: func(x float64) float64 {
			if ls.Min == ls.Max {
				return 0.5
			}
			return ls.Map(x)
		},
		ticker: plot.DefaultTicks{},
	}
}

// logTrans maps from logarithmically. from must lie entirely on one side
// of zero.
func logTrans(from Interval, base int) (transformation, error) {
	lo, hi := from.Min, from.Max
	flip := lo > hi
	if flip {
		lo, hi = hi, lo
	}
	if !(lo > 0 || hi < 0) {
		return transformation{}, errors.Wrapf(ErrInvalidLogDomain, "[%g, %g]", from.Min, from.Max)
	}
	ls, err := scale.NewLog(lo, hi, base)
	if err != nil {
		return transformation{}, errors.Mark(errors.Wrapf(err, "log base %d", base), ErrInvalidLogDomain)
	}

	var ticker plot.Ticker = plot.LogTicks{}
	switch {
	case base != 10:
		ticker = logTicker{ls: &ls}
	case lo <= 0:
		// plot.LogTicks cannot handle negative domains.
		ticker = plot.DefaultTicks{}
	}
	return transformation{
		name:   "Log",
		coerce: toFloat,
		unit: func(x float64) float64 {
			u := ls.Map(x)
			if flip {
				return 1 - u
			}
			return u
		},
		ticker: ticker,
	}, nil
}

// logTicker places ticks at powers of the base of ls. plot.LogTicks only
// knows base 10.
type logTicker struct {
	ls *scale.Log
}

// maxLogTicks bounds the major ticks before thin reduces them further.
const maxLogTicks = 10

func (t logTicker) Ticks(min, max float64) []plot.Tick {
	major, minor := t.ls.Ticks(scale.TickOptions{Max: maxLogTicks})
	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	for _, x := range major {
		if x < min || x > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'g', -1, 64)})
	}
	for _, x := range minor {
		if x < min || x > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: x})
	}
	return ticks
}

// timeTrans maps from, given in Unix milliseconds, linearly. Strings are
// parsed with layouts.
func timeTrans(from Interval, layouts []string) transformation {
	t := linearTrans(from)
	t.name = "Time"
	t.coerce = func(v interface{}) (float64, error) {
		tm, err := toTime(v, layouts)
		if err != nil {
			return math.NaN(), err
		}
		return timeToMillis(tm), nil
	}
	t.ticker = plot.TimeTicks{
		Ticker: plot.DefaultTicks{},
		Format: "2006-01-02 15:04",
		Time:   millisToTime,
	}
	return t
}

// lerp maps u in [0,1] to the corresponding point in i.
func (i Interval) lerp(u float64) float64 {
	return i.Min + (i.Max-i.Min)*u
}

// thin reduces the major ticks in ticks to at most n by keeping every
// k-th. Minor ticks are kept only if no major tick was dropped.
func thin(ticks []plot.Tick, n int) []plot.Tick {
	major := 0
	for _, t := range ticks {
		if !t.IsMinor() {
			major++
		}
	}
	if n <= 0 || major <= n {
		return ticks
	}
	k := int(math.Ceil(float64(major) / float64(n)))
	var kept []plot.Tick
	i := 0
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		if i%k == 0 {
			kept = append(kept, t)
		}
		i++
	}
	return kept
}
