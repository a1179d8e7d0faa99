package scales

import (
	"time"
)

// padInterval widens i on both sides by ratio times its length. An edge
// that does not cross zero before padding is not pushed across zero.
func padInterval(i Interval, ratio float64) Interval {
	pad := (i.Max - i.Min) * ratio

	upper := i.Max + pad
	if i.Max <= 0 && upper > 0 {
		upper = 0
	}
	lower := i.Min - pad
	if i.Min >= 0 && lower < 0 {
		lower = 0
	}
	return Interval{lower, upper}
}

// padLogInterval pads i like padInterval, but a bound that would reach or
// cross zero stays unpadded.
func padLogInterval(i Interval, ratio float64) Interval {
	p := padInterval(i, ratio)
	if i.Min > 0 && p.Min <= 0 {
		p.Min = i.Min
	}
	if i.Max < 0 && p.Max >= 0 {
		p.Max = i.Max
	}
	return p
}

// An edgeRule expands a time domain by whole calendar units if the domain
// spans more than threshold units.
type edgeRule struct {
	unit      string
	threshold int
	factor    int
	diff      func(start, end time.Time) int
	add       func(t time.Time, n int) time.Time
}

// edgeRules are tried from the coarsest to the finest unit.
var edgeRules = []edgeRule{
	{"years", 1, 1, diffYears, addYears},
	{"months", 1, 1, diffMonths, addMonths},
	{"days", 1, 1, diffDays, addDays},
	{"hours", 1, 1, diffClock(time.Hour), addClock(time.Hour)},
	{"minutes", 30, 30, diffClock(time.Minute), addClock(time.Minute)},
	{"minutes", 1, 1, diffClock(time.Minute), addClock(time.Minute)},
	{"seconds", 15, 15, diffClock(time.Second), addClock(time.Second)},
	{"seconds", 1, 1, diffClock(time.Second), addClock(time.Second)},
}

// expandTimeEdges moves start and end apart by units of the coarsest
// calendar unit the domain spans more than its threshold of. It returns
// the unit used or "" if the domain is left unchanged.
func expandTimeEdges(start, end time.Time, units int) (time.Time, time.Time, string) {
	for _, r := range edgeRules {
		if r.diff(start, end) > r.threshold {
			n := units * r.factor
			return r.add(start, -n), r.add(end, n), r.unit
		}
	}
	return start, end, ""
}

// ----------------------------------------------------------------------------
// Calendar arithmetic

// diffYears returns the number of full years from a to b.
func diffYears(a, b time.Time) int {
	return diffMonths(a, b) / 12
}

// diffMonths returns the number of full calendar months from a to b.
func diffMonths(a, b time.Time) int {
	sign := 1
	if b.Before(a) {
		a, b, sign = b, a, -1
	}
	m := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	if m > 0 && addMonths(a, m).After(b) {
		m--
	}
	return sign * m
}

// diffDays returns the number of full calendar days from a to b.
func diffDays(a, b time.Time) int {
	sign := 1
	if b.Before(a) {
		a, b, sign = b, a, -1
	}
	d := int(b.Sub(a) / (24 * time.Hour))
	for !addDays(a, d+1).After(b) {
		d++
	}
	for d > 0 && addDays(a, d).After(b) {
		d--
	}
	return sign * d
}

func diffClock(unit time.Duration) func(a, b time.Time) int {
	return func(a, b time.Time) int { return int(b.Sub(a) / unit) }
}

func addClock(unit time.Duration) func(t time.Time, n int) time.Time {
	return func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * unit) }
}

func addYears(t time.Time, n int) time.Time { return addMonths(t, 12*n) }

func addDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

// addMonths adds n calendar months to t. The day is clamped to the last
// day of the resulting month, so Jan 31 + 1 month is the end of February.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
