package scales

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartYAML = `
axes:
  left:
    mapsTo: value
    scaleType: log
    base: 2
    includeZero: true
  bottom:
    mapsTo: date
    scaleType: time
    main: true
  right:
    mapsTo: other
    domain: [0, 100]
timeScale:
  addSpaceOnEdges: 1
grid:
  x:
    numberOfTicks: 7
`

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(chartYAML))
	require.NoError(t, err)

	require.NotNil(t, opts.Axes.Left)
	assert.Equal(t, Log, opts.Axes.Left.ScaleType)
	assert.Equal(t, "value", opts.Axes.Left.MapsTo)
	assert.Equal(t, 2, opts.Axes.Left.Base)
	assert.True(t, opts.Axes.Left.IncludeZero)

	require.NotNil(t, opts.Axes.Bottom)
	assert.Equal(t, Time, opts.Axes.Bottom.ScaleType)
	assert.True(t, opts.Axes.Bottom.Main)

	require.NotNil(t, opts.Axes.Right)
	assert.Equal(t, Linear, opts.Axes.Right.ScaleType)
	assert.Equal(t, []interface{}{0, 100}, opts.Axes.Right.Domain)

	assert.Nil(t, opts.Axes.Top)
	assert.Nil(t, opts.Axes.At(Top))
	assert.Same(t, opts.Axes.Left, opts.Axes.At(Left))

	assert.Equal(t, 1, opts.TimeScale.AddSpaceOnEdges)
	assert.Equal(t, 7, opts.Grid.X.NumberOfTicks)
	assert.Equal(t, 0, opts.Grid.Y.NumberOfTicks)
}

func TestParseOptionsJSON(t *testing.T) {
	opts, err := ParseOptions([]byte(`{"axes": {"bottom": {"scaleType": "labels", "mapsTo": "key"}}}`))
	require.NoError(t, err)
	require.NotNil(t, opts.Axes.Bottom)
	assert.Equal(t, Labels, opts.Axes.Bottom.ScaleType)
	assert.Equal(t, "key", opts.Axes.Bottom.MapsTo)
}

func TestParseOptionsUnknownScaleType(t *testing.T) {
	_, err := ParseOptions([]byte("axes:\n  left:\n    scaleType: pie\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScaleType), "%v", err)
}

func TestParsePosition(t *testing.T) {
	for _, p := range Positions {
		got, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePosition("center")
	assert.True(t, errors.Is(err, ErrUnknownPosition))
	assert.Equal(t, "none", NoPosition.String())
}
