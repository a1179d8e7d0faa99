package scales

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot"
)

func mustLog(from Interval, base int) transformation {
	t, err := logTrans(from, base)
	if err != nil {
		panic(err)
	}
	return t
}

var transformationTests = []struct {
	trans   transformation
	a, b    float64 // from
	x, want float64
}{
	{linearTrans(Interval{10, 20}), 10, 20, 12, 0.2},
	{linearTrans(Interval{3, 5}), 3, 5, 3, 0},
	{linearTrans(Interval{3, 5}), 3, 5, 4, 0.5},
	{linearTrans(Interval{3, 5}), 3, 5, 5, 1},
	{linearTrans(Interval{3, 3}), 3, 3, 7, 0.5},

	{mustLog(Interval{1, 100}, 10), 1, 100, 1, 0},
	{mustLog(Interval{1, 100}, 10), 1, 100, 10, 0.5},
	{mustLog(Interval{1, 100}, 10), 1, 100, 100, 1},
	{mustLog(Interval{100, 1}, 10), 100, 1, 100, 0},

	{timeTrans(Interval{0, 1000}, nil), 0, 1000, 250, 0.25},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.name, i), func(t *testing.T) {
			if got := tc.trans.unit(tc.x); !equal64(got, tc.want) {
				t.Errorf("%s[%g,%g](%g) = %f, want %f",
					tc.trans.name, tc.a, tc.b, tc.x, got, tc.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := (Interval{100, 0}).lerp(0.25); got != 75 {
		t.Errorf("lerp = %g, want 75", got)
	}
	if got := (Interval{10, 20}).lerp(0.5); got != 15 {
		t.Errorf("lerp = %g, want 15", got)
	}
}

func TestThin(t *testing.T) {
	var ticks []plot.Tick
	for i := 1; i <= 10; i++ {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: strconv.Itoa(i)})
		ticks = append(ticks, plot.Tick{Value: float64(i) + 0.5})
	}

	if got := thin(ticks, 0); len(got) != len(ticks) {
		t.Errorf("thin(ticks, 0) dropped ticks: %d of %d", len(got), len(ticks))
	}
	if got := thin(ticks, 10); len(got) != len(ticks) {
		t.Errorf("thin(ticks, 10) dropped ticks: %d of %d", len(got), len(ticks))
	}

	got := thin(ticks, 3)
	var values []float64
	for _, tk := range got {
		values = append(values, tk.Value)
	}
	want := []float64{1, 5, 9}
	if fmt.Sprint(values) != fmt.Sprint(want) {
		t.Errorf("thin(ticks, 3) = %v, want %v", values, want)
	}
}
