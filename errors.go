package scales

import (
	"github.com/cockroachdb/errors"
)

// Errors reported while resolving or querying scales. Use errors.Is to
// test for them; the returned errors wrap these with the axis position
// and the offending values.
var (
	// ErrNoConfiguration is returned when a position without axis
	// configuration is queried.
	ErrNoConfiguration = errors.New("axis not configured")

	// ErrEmptyDomain is returned when no display record contributes a
	// value or label to an inferred domain.
	ErrEmptyDomain = errors.New("cannot infer domain from empty data")

	// ErrInvalidLogDomain is returned when a logarithmic domain touches
	// or straddles zero.
	ErrInvalidLogDomain = errors.New("logarithmic domain must not include zero")

	// ErrInvalidDomain is returned for explicit domains which cannot be
	// used with the axis' scale type.
	ErrInvalidDomain = errors.New("invalid explicit domain")

	// ErrInvalidBase is returned for logarithm bases below 2.
	ErrInvalidBase = errors.New("logarithm base must be at least 2")

	// ErrInvalidOption is returned for chart options out of their range,
	// like a negative timeScale.addSpaceOnEdges.
	ErrInvalidOption = errors.New("invalid chart option")

	ErrUnknownScaleType = errors.New("unknown scale type")
	ErrUnknownPosition  = errors.New("unknown axis position")

	// ErrBadTime is returned for values that cannot be coerced to a time.
	ErrBadTime = errors.New("cannot interpret value as time")

	// ErrBadValue is returned for values that cannot be coerced to a number
	// or lie outside what a scale can map.
	ErrBadValue = errors.New("cannot interpret value as number")

	// ErrUnknownCategory is returned when projecting a value which is not
	// part of a categorical domain.
	ErrUnknownCategory = errors.New("value not in categorical domain")
)
