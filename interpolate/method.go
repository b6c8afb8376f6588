package interpolate

import (
	"fmt"
)

// Method selects the polynomial order of the fitting splines. The zero
// value, MethodNone, stands for "use the method the interpolator was
// constructed with" when passed to EvalOpts or GradientOpts.
type Method int

const (
	MethodNone Method = iota
	// Linear fits order 1 splines.
	Linear
	// Cubic fits order 3 splines.
	Cubic
	// Quintic fits order 5 splines.
	Quintic
)

// Order returns the nominal spline order of the method, or 0 if the method
// is not a recognized one.
func (m Method) Order() int {
	switch m {
	case Linear:
		return 1
	case Cubic:
		return 3
	case Quintic:
		return 5
	}
	return 0
}

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case Linear:
		return "slinear"
	case Cubic:
		return "cubic"
	case Quintic:
		return "quintic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a method name to a Method. The recognized names are
// "slinear", "cubic", and "quintic".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "slinear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	case "quintic":
		return Quintic, nil
	}
	return MethodNone, configErrorf(
		`method "%s" is not defined: valid methods are "slinear", `+
			`"cubic", and "quintic"`, name,
	)
}

// resolveOrders returns the effective per-axis spline orders for the given
// method. An axis with too few points for the method's nominal order fails
// if strict is set and has its order clamped to len(axis) - 1 otherwise.
func resolveOrders(axes [][]float64, m Method, strict bool) ([]int, error) {
	k := m.Order()
	if k == 0 {
		return nil, configErrorf(
			`method "%s" is not defined: valid methods are "slinear", `+
				`"cubic", and "quintic"`, m,
		)
	}

	orders := make([]int, len(axes))
	for i, axis := range axes {
		orders[i] = k
		if len(axis) <= k {
			if strict {
				return nil, configErrorf(
					"there are %d points in dimension %d, but method %s "+
						"requires at least %d points per dimension",
					len(axis), i, m, k+1,
				)
			}
			orders[i] = len(axis) - 1
		}
	}
	return orders, nil
}
