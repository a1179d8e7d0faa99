package scales

import (
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"

	"github.com/vdobler/scales/config"
)

// toTime coerces v to a time. Numbers are Unix milliseconds; strings are
// parsed with the first matching layout, in UTC if the layout has no zone.
// Nil layouts mean config.DefaultTimeLayouts.
func toTime(v interface{}, layouts []string) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		if layouts == nil {
			layouts = config.DefaultTimeLayouts()
		}
		for _, layout := range layouts {
			if tm, err := time.ParseInLocation(layout, t, time.UTC); err == nil {
				return tm, nil
			}
		}
		return time.Time{}, errors.Wrapf(ErrBadTime, "%q", t)
	case nil:
	default:
		if ms, err := cast.ToFloat64E(v); err == nil && !math.IsNaN(ms) {
			return millisToTime(ms), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrBadTime, "%v (%T)", v, v)
}

// toFloat coerces v to a number. Times are converted to Unix milliseconds.
func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case time.Time:
		return timeToMillis(t), nil
	case nil:
		return math.NaN(), errors.Wrap(ErrBadValue, "<nil>")
	}
	x, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN(), errors.Mark(errors.Wrapf(err, "%v", v), ErrBadValue)
	}
	return x, nil
}

// toLabel returns the category label of v.
func toLabel(v interface{}) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func timeToMillis(t time.Time) float64 {
	return float64(t.Unix())*1e3 + float64(t.Nanosecond())/1e6
}

func millisToTime(ms float64) time.Time {
	sec := math.Floor(ms / 1e3)
	nsec := math.Round((ms - sec*1e3) * 1e6)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// sameValue reports whether a and b denote the same domain value: numbers
// compare numerically, everything else by label.
func sameValue(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isNumber(a) && isNumber(b) {
		x, errx := cast.ToFloat64E(a)
		y, erry := cast.ToFloat64E(b)
		return errx == nil && erry == nil && x == y
	}
	if isNumber(a) != isNumber(b) {
		return false
	}
	return toLabel(a) == toLabel(b)
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
