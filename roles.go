package scales

// Orientation is the direction the chart's marks extend in.
type Orientation int

const (
	// Vertical charts have the domain axis at the bottom and the range
	// axis on the left.
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// mainPosition returns alt if the axis at alt is flagged main and def
// otherwise.
func mainPosition(axes *Axes, def, alt AxisPosition) AxisPosition {
	if ax := axes.At(alt); ax != nil && ax.Main {
		return alt
	}
	return def
}

// scaleTypeOf returns the scale type at p; unconfigured axes count as Linear.
func scaleTypeOf(axes *Axes, p AxisPosition) ScaleType {
	if ax := axes.At(p); ax != nil {
		return ax.ScaleType
	}
	return Linear
}

// resolveRoles picks the domain and the range axis among the main
// horizontal and the main vertical axis. A Labels or Time axis is the
// domain axis, the horizontal one first; two numeric axes make the
// horizontal axis the domain axis.
func resolveRoles(axes *Axes) (domain, rng AxisPosition) {
	vertical := mainPosition(axes, Left, Right)
	horizontal := mainPosition(axes, Bottom, Top)

	switch {
	case scaleTypeOf(axes, horizontal).ordersData():
		return horizontal, vertical
	case scaleTypeOf(axes, vertical).ordersData():
		return vertical, horizontal
	}
	return horizontal, vertical
}

// orientationOf derives the orientation from the resolved roles.
func orientationOf(domain, rng AxisPosition) Orientation {
	if rng == Left && domain == Bottom {
		return Vertical
	}
	return Horizontal
}
