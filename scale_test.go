package scales

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestBandScale(t *testing.T) {
	sc, err := Build(Labels, labelDomain([]string{"a", "b", "c"}), Interval{0, 300}, Params{})
	require.NoError(t, err)
	band, ok := sc.(*BandScale)
	require.True(t, ok)

	assert.Equal(t, 100.0, band.Step())
	assert.Equal(t, 100.0, band.Bandwidth())

	x, err := band.Map("b")
	require.NoError(t, err)
	assert.Equal(t, 100.0, x)

	x, err = band.Project("b")
	require.NoError(t, err)
	assert.Equal(t, 150.0, x)

	_, err = band.Map("z")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestBandScaleReversedRange(t *testing.T) {
	sc, err := Build(Labels, labelDomain([]string{"a", "b", "c"}), Interval{300, 0}, Params{})
	require.NoError(t, err)

	x, err := sc.Map("a")
	require.NoError(t, err)
	assert.Equal(t, 200.0, x)

	x, err = sc.Project("c")
	require.NoError(t, err)
	assert.Equal(t, 50.0, x)
}

func TestBandScaleDuplicateLabels(t *testing.T) {
	sc, err := Build(Labels, labelDomain([]string{"a", "b", "a"}), Interval{0, 300}, Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sc.Domain().Labels)
	assert.Equal(t, 150.0, sc.(*BandScale).Step())
}

func TestBandTicks(t *testing.T) {
	sc, err := Build(Labels, labelDomain([]string{"a", "b", "c"}), Interval{0, 300}, Params{})
	require.NoError(t, err)
	assert.Equal(t, []Tick{
		{Pos: 50, Label: "a"},
		{Pos: 150, Label: "b"},
		{Pos: 250, Label: "c"},
	}, sc.Ticks(0))
}

func TestLinearScale(t *testing.T) {
	sc, err := Build(Linear, numericDomain(Linear, 0, 10), Interval{0, 100}, Params{})
	require.NoError(t, err)

	x, err := sc.Map(5)
	require.NoError(t, err)
	assert.InDelta(t, 50, x, 1e-9)

	x, err = sc.Project("2.5")
	require.NoError(t, err)
	assert.InDelta(t, 25, x, 1e-9)

	_, err = sc.Map(nil)
	assert.True(t, errors.Is(err, ErrBadValue))

	_, err = sc.Map("many")
	assert.True(t, errors.Is(err, ErrBadValue))
}

func TestLinearScaleDegenerate(t *testing.T) {
	sc, err := Build(Linear, numericDomain(Linear, 3, 3), Interval{0, 100}, Params{})
	require.NoError(t, err)
	x, err := sc.Map(3)
	require.NoError(t, err)
	assert.Equal(t, 50.0, x)
}

func TestLogScale(t *testing.T) {
	sc, err := Build(Log, numericDomain(Log, 1, 1000), Interval{0, 300}, Params{})
	require.NoError(t, err)

	x, err := sc.Map(10)
	require.NoError(t, err)
	assert.InDelta(t, 100, x, 1e-9)

	x, err = sc.Map(100)
	require.NoError(t, err)
	assert.InDelta(t, 200, x, 1e-9)

	reversed, err := Build(Log, numericDomain(Log, 1000, 1), Interval{0, 300}, Params{Base: 2})
	require.NoError(t, err)
	x, err = reversed.Map(10)
	require.NoError(t, err)
	assert.InDelta(t, 200, x, 1e-9)

	for _, v := range []interface{}{0, -5, "-1"} {
		x, err := sc.Map(v)
		assert.True(t, errors.Is(err, ErrBadValue), "Map(%v) = %g, %v", v, x, err)
		_, err = sc.Project(v)
		assert.True(t, errors.Is(err, ErrBadValue), "Project(%v)", v)
	}
}

func TestLogScaleBase(t *testing.T) {
	for _, base := range []int{1, -2} {
		_, err := Build(Log, numericDomain(Log, 1, 64), Interval{0, 1}, Params{Base: base})
		assert.True(t, errors.Is(err, ErrInvalidBase), "base %d: %v", base, err)
	}

	sc, err := Build(Log, numericDomain(Log, 1, 64), Interval{0, 60}, Params{Base: 2})
	require.NoError(t, err)
	x, err := sc.Map(8)
	require.NoError(t, err)
	assert.InDelta(t, 30, x, 1e-9)

	powers := map[string]bool{"1": true, "2": true, "4": true, "8": true, "16": true, "32": true, "64": true}
	major := 0
	for _, tk := range sc.Ticks(0) {
		if tk.Minor {
			continue
		}
		major++
		assert.True(t, powers[tk.Label], "tick %q is not a power of 2", tk.Label)
	}
	assert.GreaterOrEqual(t, major, 2)
}

func TestLogScaleRejectsZero(t *testing.T) {
	for _, d := range []Interval{{0, 100}, {-5, 5}, {-10, 0}} {
		_, err := Build(Log, numericDomain(Log, d.Min, d.Max), Interval{0, 1}, Params{Base: 10})
		assert.True(t, errors.Is(err, ErrInvalidLogDomain), "domain %v: %v", d, err)
	}
}

func TestTimeScale(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 1, 11, 0, 0, 0, 0, time.UTC)
	sc, err := Build(Time, timeDomain(start, end), Interval{0, 100}, Params{})
	require.NoError(t, err)

	x, err := sc.Map("2020-01-06")
	require.NoError(t, err)
	assert.InDelta(t, 50, x, 1e-9)

	x, err = sc.Project(start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 10, x, 1e-9)

	_, err = sc.Map("next tuesday")
	assert.True(t, errors.Is(err, ErrBadTime))
}

func TestBuildRejectsMismatch(t *testing.T) {
	_, err := Build(Linear, labelDomain([]string{"a"}), Interval{0, 1}, Params{})
	assert.True(t, errors.Is(err, ErrInvalidDomain))

	_, err = Build(ScaleType(9), numericDomain(Linear, 0, 1), Interval{0, 1}, Params{})
	assert.True(t, errors.Is(err, ErrUnknownScaleType))
}

func TestContinuousTicks(t *testing.T) {
	sc, err := Build(Linear, numericDomain(Linear, 0, 10), Interval{0, 100}, Params{})
	require.NoError(t, err)

	ticks := sc.Ticks(3)
	require.NotEmpty(t, ticks)
	major := 0
	for _, tk := range ticks {
		assert.True(t, tk.Pos >= -1e-9 && tk.Pos <= 100+1e-9, "tick %v outside range", tk)
		if !tk.Minor {
			major++
		}
	}
	assert.LessOrEqual(t, major, 3)
	assert.Greater(t, major, 0)
}

func TestParseScaleType(t *testing.T) {
	for _, st := range []ScaleType{Linear, Log, Labels, Time} {
		got, err := ParseScaleType(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	got, err := ParseScaleType("")
	require.NoError(t, err)
	assert.Equal(t, Linear, got)

	_, err = ParseScaleType("pie")
	assert.True(t, errors.Is(err, ErrUnknownScaleType))
}
