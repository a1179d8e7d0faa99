package scales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var resolveRolesTests = []struct {
	name        string
	axes        Axes
	domain, rng AxisPosition
	orientation Orientation
}{
	{"unconfigured", Axes{},
		Bottom, Left, Vertical},
	{"linear/linear",
		Axes{Left: &AxisOptions{}, Bottom: &AxisOptions{}},
		Bottom, Left, Vertical},
	{"labels at bottom",
		Axes{Left: &AxisOptions{}, Bottom: &AxisOptions{ScaleType: Labels}},
		Bottom, Left, Vertical},
	{"labels at left",
		Axes{Left: &AxisOptions{ScaleType: Labels}, Bottom: &AxisOptions{}},
		Left, Bottom, Horizontal},
	{"time at left",
		Axes{Left: &AxisOptions{ScaleType: Time}, Bottom: &AxisOptions{ScaleType: Log}},
		Left, Bottom, Horizontal},
	{"horizontal wins",
		Axes{Left: &AxisOptions{ScaleType: Time}, Bottom: &AxisOptions{ScaleType: Labels}},
		Bottom, Left, Vertical},
	{"main right",
		Axes{Left: &AxisOptions{}, Right: &AxisOptions{ScaleType: Labels, Main: true}, Bottom: &AxisOptions{}},
		Right, Bottom, Horizontal},
	{"right not main",
		Axes{Left: &AxisOptions{}, Right: &AxisOptions{ScaleType: Labels}, Bottom: &AxisOptions{}},
		Bottom, Left, Vertical},
	{"right only",
		Axes{Right: &AxisOptions{ScaleType: Labels}, Bottom: &AxisOptions{}},
		Bottom, Left, Vertical},
	{"main top",
		Axes{Left: &AxisOptions{}, Top: &AxisOptions{ScaleType: Time, Main: true}, Bottom: &AxisOptions{}},
		Top, Left, Horizontal},
	{"main top and right",
		Axes{Right: &AxisOptions{Main: true}, Top: &AxisOptions{Main: true}},
		Top, Right, Horizontal},
}

func TestResolveRoles(t *testing.T) {
	for _, tc := range resolveRolesTests {
		t.Run(tc.name, func(t *testing.T) {
			domain, rng := resolveRoles(&tc.axes)
			assert.Equal(t, tc.domain, domain, "domain")
			assert.Equal(t, tc.rng, rng, "range")
			assert.NotEqual(t, domain, rng)
			assert.Equal(t, tc.orientation, orientationOf(domain, rng))
		})
	}
}

func TestOrientationOf(t *testing.T) {
	for _, domain := range Positions {
		for _, rng := range Positions {
			want := Horizontal
			if domain == Bottom && rng == Left {
				want = Vertical
			}
			assert.Equal(t, want, orientationOf(domain, rng), "%s/%s", domain, rng)
		}
	}
}
