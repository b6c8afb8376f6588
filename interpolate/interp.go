/*package interpolate interpolates data sampled on a regular grid, a grid
whose axes are independent of one another but whose spacing within an axis
may be uneven. Interpolation is separable: the value table is folded against
a query point one axis at a time with 1D polynomial splines of order 1, 3,
or 5, and the same folds propagate analytic gradients with respect to the
query coordinates via the chain rule.*/
package interpolate

// Options configures interpolator construction beyond the method choice.
type Options struct {
	// BoundsError makes evaluation fail on any query point outside the
	// grid's domain. When unset, out-of-domain points are extrapolated.
	BoundsError bool

	// FillValue, if non-nil while BoundsError is unset, overwrites the
	// primal result of every out-of-domain point. Gradients are never
	// overwritten: they always carry the extrapolated derivative.
	FillValue *float64

	// StrictOrders makes construction fail when an axis has too few points
	// for the method's nominal spline order, instead of clamping the order
	// for that axis alone.
	StrictOrders bool
}

// Interp interpolates values sampled on a regular grid using separable
// polynomial splines and computes analytic gradients with respect to the
// query coordinates.
//
// An Interp caches the gradients of its most recent evaluation, so it is
// not thread safe. Callers needing concurrent evaluation must use one
// Interp per goroutine or serialize access externally.
type Interp struct {
	axes   [][]float64
	values *Array
	dims   []int // leading extents of values, one per axis
	trail  []int // trailing extents: vector-valued output channels
	ch     int
	method Method
	orders []int
	opt    Options

	// Most recent gradient-computing evaluation; nil when no valid cached
	// gradients exist.
	last *evalRecord
}

// evalRecord is the cached state of one gradient-computing evaluation.
type evalRecord struct {
	points *Array
	method Method
	grads  []float64 // flattened (point, axis, channel)
}

// New constructs an interpolator over the grid spanned by axes for the
// given training values. Every axis must be strictly ascending with at
// least two points, and the leading extents of values must match the axis
// lengths in order. Any trailing extents of values are treated as
// vector-valued output channels. Both axes and values are copied.
func New(
	axes [][]float64, values *Array, method Method, opt Options,
) (*Interp, error) {
	n := len(axes)
	if n == 0 {
		return nil, configErrorf("no grid axes were given")
	} else if n > len(values.Shape) {
		return nil, configErrorf(
			"there are %d axis arrays, but values has %d dimensions",
			n, len(values.Shape),
		)
	}

	for i, axis := range axes {
		if len(axis) < 2 {
			return nil, configErrorf(
				"axis %d has %d points, but at least 2 are required",
				i, len(axis),
			)
		}
		for j := 0; j < len(axis)-1; j++ {
			if axis[j+1] <= axis[j] {
				return nil, configErrorf(
					"the points in dimension %d must be strictly ascending",
					i,
				)
			}
		}
		if values.Shape[i] != len(axis) {
			return nil, configErrorf(
				"there are %d points and %d values in dimension %d",
				len(axis), values.Shape[i], i,
			)
		}
	}

	orders, err := resolveOrders(axes, method, opt.StrictOrders)
	if err != nil {
		return nil, err
	}

	in := &Interp{
		axes:   make([][]float64, n),
		values: values.clone(),
		method: method,
		orders: orders,
		opt:    opt,
	}
	for i, axis := range axes {
		in.axes[i] = make([]float64, len(axis))
		copy(in.axes[i], axis)
	}
	in.dims = in.values.Shape[:n]
	in.trail = in.values.Shape[n:]
	in.ch = sizeOf(in.trail)
	return in, nil
}

// NDim returns the number of grid axes.
func (in *Interp) NDim() int { return len(in.axes) }

// Method returns the method the interpolator was constructed with.
func (in *Interp) Method() Method { return in.method }

// Orders returns the resolved per-axis spline orders.
func (in *Interp) Orders() []int {
	orders := make([]int, len(in.orders))
	copy(orders, in.orders)
	return orders
}

// EvalOpts controls a single evaluation.
type EvalOpts struct {
	// Method overrides the construction-time method for this call only.
	// Per-axis orders are re-resolved under the same clamping rule, without
	// changing the stored configuration. MethodNone keeps the stored
	// method.
	Method Method

	// NoGradients skips gradient computation. This invalidates the
	// evaluation cache, which would otherwise hold gradients that no longer
	// correspond to the points evaluated last.
	NoGradients bool
}

// Eval interpolates at points, whose trailing dimension must equal the
// number of grid axes; the leading dimensions are an arbitrary batch shape.
// The result keeps that batch shape, with the value table's trailing
// extents appended. Gradients are computed alongside the values and cached
// for retrieval through Gradient.
func (in *Interp) Eval(points *Array) (*Array, error) {
	return in.EvalOpts(points, EvalOpts{})
}

// EvalOpts is Eval with explicit evaluation options.
func (in *Interp) EvalOpts(points *Array, opt EvalOpts) (*Array, error) {
	method, orders := in.method, in.orders
	if opt.Method != MethodNone && opt.Method != in.method {
		method = opt.Method
		var err error
		orders, err = resolveOrders(in.axes, method, in.opt.StrictOrders)
		if err != nil {
			return nil, err
		}
	}

	n := len(in.axes)
	last := 0
	if len(points.Shape) > 0 {
		last = points.Shape[len(points.Shape)-1]
	}
	if last != n {
		return nil, configErrorf(
			"the requested points have dimension %d, but this interpolator "+
				"has dimension %d", last, n,
		)
	}

	pts := points.Data
	var mask []bool
	if in.opt.BoundsError {
		if err := checkBounds(in.axes, pts, n); err != nil {
			return nil, err
		}
	} else {
		mask = outOfBounds(in.axes, pts, n)
	}

	f := &folder{axes: in.axes, orders: orders, ch: in.ch}
	vals, grads, err := f.evalBatch(in.values.Data, in.dims, pts,
		!opt.NoGradients)
	if err != nil {
		return nil, err
	}

	if !in.opt.BoundsError && in.opt.FillValue != nil {
		fill := *in.opt.FillValue
		for p, out := range mask {
			if !out {
				continue
			}
			row := vals[p*in.ch : (p+1)*in.ch]
			for i := range row {
				row[i] = fill
			}
		}
	}

	if opt.NoGradients {
		in.last = nil
	} else {
		in.last = &evalRecord{
			points: points.clone(), method: method, grads: grads,
		}
	}

	shape := append([]int{}, points.Shape[:len(points.Shape)-1]...)
	shape = append(shape, in.trail...)
	return &Array{Shape: shape, Data: vals}, nil
}

// Gradient returns the gradients of the interpolated values at points with
// respect to each query coordinate. The result keeps the leading batch
// shape of points, with the number of grid axes and then the value table's
// trailing extents appended.
//
// If points and the method match the interpolator's most recent
// gradient-computing evaluation, the cached gradients are returned without
// recomputation. Otherwise a fresh evaluation refreshes the cache first.
// Point equality is element-wise numeric equality, not approximate.
func (in *Interp) Gradient(points *Array) (*Array, error) {
	return in.GradientOpts(points, MethodNone)
}

// GradientOpts is Gradient with a per-call method override.
func (in *Interp) GradientOpts(points *Array, method Method) (*Array, error) {
	if method == MethodNone {
		method = in.method
	}
	if method.Order() == 0 {
		return nil, &GradientError{Method: method}
	}

	if in.last == nil || in.last.method != method ||
		!in.last.points.equal(points) {

		if _, err := in.EvalOpts(points, EvalOpts{Method: method}); err != nil {
			return nil, err
		}
	}

	shape := append([]int{}, points.Shape[:len(points.Shape)-1]...)
	shape = append(shape, len(in.axes))
	shape = append(shape, in.trail...)
	return &Array{Shape: shape, Data: in.last.grads}, nil
}
