package interpolate

import (
	"fmt"
)

// ConfigError reports an invalid interpolator configuration: an unknown
// method, mismatched grid and value shapes, a non-ascending axis, an axis
// too short for the requested spline order under strict checking, or query
// points of the wrong dimensionality.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// BoundsError reports a query point outside the grid's domain while the
// interpolator was constructed with BoundsError set.
type BoundsError struct {
	// Axis is the index of the offending grid dimension.
	Axis int
	// Value is the out-of-range coordinate.
	Value    float64
	Min, Max float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf(
		"one of the requested points is out of bounds in dimension %d: "+
			"coordinate %g is outside [%g, %g]",
		e.Axis, e.Value, e.Min, e.Max,
	)
}

// GradientError reports a gradient request for a method that does not
// support derivative computation. Every recognized method is spline-based,
// so this only triggers on an invalid method override.
type GradientError struct {
	Method Method
}

func (e *GradientError) Error() string {
	return fmt.Sprintf(
		"method %s does not support gradient calculations", e.Method,
	)
}
