package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArray(t *testing.T, shape []int, data []float64) *Array {
	a, err := NewArray(shape, data)
	require.NoError(t, err)
	return a
}

// xorValues is the fuzzy-XOR training table over x = [0, 1], y = [0, 1]:
// the bilinear interpolant through it is x + y - 2xy.
func xorValues(t *testing.T) *Array {
	return mustArray(t, []int{2, 2}, []float64{0, 1, 1, 0})
}

func TestLinear1D(t *testing.T) {
	axes := [][]float64{{0, 1, 3}}
	vals := mustArray(t, []int{3}, []float64{0, 2, 1})
	in, err := New(axes, vals, Linear, Options{})
	require.NoError(t, err)

	out, err := in.Eval(mustArray(t, []int{3, 1}, []float64{0.5, 2, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Shape)
	assert.InDelta(t, 1.0, out.Data[0], 1e-12, "bracketing 0 and 1")
	assert.InDelta(t, 1.5, out.Data[1], 1e-12, "bracketing 1 and 3")
	assert.InDelta(t, 2.0, out.Data[2], 1e-12, "on a grid point")
}

func TestGridPointReproduction(t *testing.T) {
	xs := []float64{0, 0.4, 1.1, 2, 2.6, 3.5}
	ys := []float64{-1, 0, 0.7, 1.5, 2.2, 3, 4.1}
	f := func(x, y float64) float64 { return math.Sin(x)*y + x*x }

	data := make([]float64, len(xs)*len(ys))
	for i, x := range xs {
		for j, y := range ys {
			data[i*len(ys)+j] = f(x, y)
		}
	}
	vals := mustArray(t, []int{len(xs), len(ys)}, data)

	for _, m := range []Method{Linear, Cubic, Quintic} {
		in, err := New([][]float64{xs, ys}, vals, m, Options{})
		require.NoError(t, err)
		for _, x := range xs {
			for _, y := range ys {
				out, err := in.Eval(Point(x, y))
				require.NoError(t, err)
				assert.InDelta(t, f(x, y), out.Data[0], 1e-9,
					"method %s at (%g, %g)", m, x, y)
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{})
	require.NoError(t, err)

	pts := mustArray(t, []int{2, 2}, []float64{0.25, 0.75, 0.5, 0.5})
	out1, err := in.Eval(pts)
	require.NoError(t, err)
	out2, err := in.Eval(pts)
	require.NoError(t, err)
	assert.Equal(t, out1.Data, out2.Data)
	assert.Equal(t, out1.Shape, out2.Shape)
}

func TestOrderClamping(t *testing.T) {
	axes := [][]float64{{0, 1, 2}}
	vals := mustArray(t, []int{3}, []float64{0, 1, 4})

	in, err := New(axes, vals, Quintic, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, in.Orders())

	// An order-2 spline through three samples of x*x is x*x itself.
	out, err := in.Eval(Point(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, out.Data[0], 1e-10)

	_, err = New(axes, vals, Quintic, Options{StrictOrders: true})
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestExtrapolationAndFill(t *testing.T) {
	axes := [][]float64{{0, 1, 2}}
	vals := mustArray(t, []int{3}, []float64{0, 2, 6})

	// No fill value: out-of-domain points take the spline's extrapolated
	// value, not a sentinel.
	in, err := New(axes, vals, Linear, Options{})
	require.NoError(t, err)
	out, err := in.Eval(Point(3))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, out.Data[0], 1e-12,
		"extension of the [1, 2] segment")

	// With a fill value the primal result is overwritten, but the gradient
	// still carries the extrapolated derivative.
	fill := 7.0
	in, err = New(axes, vals, Linear, Options{FillValue: &fill})
	require.NoError(t, err)
	out, err = in.Eval(Point(3))
	require.NoError(t, err)
	assert.Equal(t, 7.0, out.Data[0])

	grad, err := in.Gradient(Point(3))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, grad.Data[0], 1e-12,
		"slope of the [1, 2] segment")

	// Interior points are untouched by the fill value.
	out, err = in.Eval(Point(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Data[0], 1e-12)
}

func TestFuzzyXOR(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{})
	require.NoError(t, err)

	cases := []struct{ x, y, want float64 }{
		{0.5, 0.5, 0.5},
		{0, 0, 0}, {1, 1, 0}, {0, 1, 1}, {1, 0, 1},
	}
	for _, c := range cases {
		out, err := in.Eval(Point(c.x, c.y))
		require.NoError(t, err)
		assert.InDelta(t, c.want, out.Data[0], 1e-12,
			"(%g, %g)", c.x, c.y)
	}

	// Both partials of x + y - 2xy vanish at the symmetric point.
	grad, err := in.Gradient(Point(0.5, 0.5))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, grad.Shape)
	assert.InDelta(t, 0.0, grad.Data[0], 1e-12)
	assert.InDelta(t, 0.0, grad.Data[1], 1e-12)

	grad, err = in.Gradient(Point(0.25, 0.25))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, grad.Data[0], 1e-12, "1 - 2y at y = 0.25")
	assert.InDelta(t, 0.5, grad.Data[1], 1e-12, "1 - 2x at x = 0.25")
}

func TestLinear3DGradient(t *testing.T) {
	f := func(x, y, z float64) float64 { return 2*x + 3*y + 5*z }
	xs := []float64{0, 0.5, 1}
	ys := []float64{0, 1}
	zs := []float64{0, 0.25, 0.75, 1}

	data := make([]float64, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				data = append(data, f(x, y, z))
			}
		}
	}
	vals := mustArray(t, []int{len(xs), len(ys), len(zs)}, data)

	// A linear function is inside every supported spline space, so values
	// and gradients are exact for each method.
	// xs and ys are too short for a cubic, so its orders clamp per axis.
	for _, m := range []Method{Linear, Cubic} {
		in, err := New([][]float64{xs, ys, zs}, vals, m, Options{})
		require.NoError(t, err)

		pts := mustArray(t, []int{2, 3},
			[]float64{0.3, 0.7, 0.1, 0.9, 0.2, 0.6})
		out, err := in.Eval(pts)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, out.Shape)
		assert.InDelta(t, f(0.3, 0.7, 0.1), out.Data[0], 1e-10)
		assert.InDelta(t, f(0.9, 0.2, 0.6), out.Data[1], 1e-10)

		grad, err := in.Gradient(pts)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, grad.Shape)
		for p := 0; p < 2; p++ {
			assert.InDelta(t, 2.0, grad.Data[p*3+0], 1e-10)
			assert.InDelta(t, 3.0, grad.Data[p*3+1], 1e-10)
			assert.InDelta(t, 5.0, grad.Data[p*3+2], 1e-10)
		}
	}
}

func TestBoundsError(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{BoundsError: true})
	require.NoError(t, err)

	_, err = in.Eval(Point(0.5, 1.5))
	var boundsErr *BoundsError
	require.True(t, errors.As(err, &boundsErr))
	assert.Equal(t, 1, boundsErr.Axis)
	assert.Equal(t, 1.5, boundsErr.Value)

	// In-domain boundary coordinates are fine.
	_, err = in.Eval(Point(0, 1))
	assert.NoError(t, err)
}

func TestGradientCache(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{})
	require.NoError(t, err)

	p1 := Point(0.25, 0.75)
	_, err = in.Eval(p1)
	require.NoError(t, err)

	// Matching points and method are served from the cache: repeated calls
	// share the same backing array.
	g1, err := in.Gradient(p1)
	require.NoError(t, err)
	g2, err := in.Gradient(p1)
	require.NoError(t, err)
	assert.Equal(t, &g1.Data[0], &g2.Data[0])

	// A different point refreshes the cache.
	p2 := Point(0.75, 0.25)
	g3, err := in.Gradient(p2)
	require.NoError(t, err)
	assert.NotEqual(t, &g1.Data[0], &g3.Data[0])
	assert.InDelta(t, 0.5, g3.Data[0], 1e-12, "1 - 2y at y = 0.25")
	assert.InDelta(t, -0.5, g3.Data[1], 1e-12, "1 - 2x at x = 0.75")

	// A different method also refreshes the cache.
	g4, err := in.GradientOpts(p2, Cubic)
	require.NoError(t, err)
	assert.NotSame(t, &g3.Data[0], &g4.Data[0])

	// A gradient-free evaluation invalidates the cache instead of leaving
	// gradients that no longer match the last evaluated points.
	_, err = in.EvalOpts(p1, EvalOpts{NoGradients: true})
	require.NoError(t, err)
	g5, err := in.Gradient(p1)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, g5.Data[0], 1e-12)
	assert.InDelta(t, 0.5, g5.Data[1], 1e-12)
}

func TestMethodOverride(t *testing.T) {
	xs := []float64{0, 0.5, 1.3, 2, 3, 4}
	cube := func(x float64) float64 { return x*x*x - 2*x }
	data := make([]float64, len(xs))
	for i, x := range xs {
		data[i] = cube(x)
	}
	vals := mustArray(t, []int{len(xs)}, data)

	in, err := New([][]float64{xs}, vals, Linear, Options{})
	require.NoError(t, err)

	// A cubic override reproduces the cubic exactly where the stored linear
	// method would not.
	out, err := in.EvalOpts(Point(0.25), EvalOpts{Method: Cubic})
	require.NoError(t, err)
	assert.InDelta(t, cube(0.25), out.Data[0], 1e-9)

	// The override does not mutate the stored configuration.
	assert.Equal(t, Linear, in.Method())
	out, err = in.Eval(Point(0.25))
	require.NoError(t, err)
	assert.InDelta(t, -0.4375, out.Data[0], 1e-9,
		"chord between x = 0 and x = 0.5")
}

func TestVectorValuedOutputs(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	// Two output channels: (x*x, -x).
	data := make([]float64, 0, 2*len(xs))
	for _, x := range xs {
		data = append(data, x*x, -x)
	}
	vals := mustArray(t, []int{len(xs), 2}, data)

	in, err := New([][]float64{xs}, vals, Cubic, Options{})
	require.NoError(t, err)

	pts := mustArray(t, []int{2, 1}, []float64{0.5, 2.5})
	out, err := in.Eval(pts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, out.Shape)
	assert.InDelta(t, 0.25, out.Data[0], 1e-10)
	assert.InDelta(t, -0.5, out.Data[1], 1e-10)
	assert.InDelta(t, 6.25, out.Data[2], 1e-10)
	assert.InDelta(t, -2.5, out.Data[3], 1e-10)

	grad, err := in.Gradient(pts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, grad.Shape)
	assert.InDelta(t, 1.0, grad.Data[0], 1e-10, "d(x*x)/dx at 0.5")
	assert.InDelta(t, -1.0, grad.Data[1], 1e-10)
	assert.InDelta(t, 5.0, grad.Data[2], 1e-10, "d(x*x)/dx at 2.5")
	assert.InDelta(t, -1.0, grad.Data[3], 1e-10)
}

func TestConstructionErrors(t *testing.T) {
	vals := mustArray(t, []int{2, 2}, []float64{0, 1, 1, 0})
	var cfgErr *ConfigError

	_, err := New(nil, vals, Linear, Options{})
	assert.True(t, errors.As(err, &cfgErr), "no axes")

	_, err = New([][]float64{{0, 1}, {0, 1}, {0, 1}}, vals, Linear,
		Options{})
	assert.True(t, errors.As(err, &cfgErr), "more axes than dimensions")

	_, err = New([][]float64{{0, 1}, {1, 0}}, vals, Linear, Options{})
	assert.True(t, errors.As(err, &cfgErr), "descending axis")

	_, err = New([][]float64{{0, 1}, {0, 1, 2}}, vals, Linear, Options{})
	assert.True(t, errors.As(err, &cfgErr), "axis/extent mismatch")

	_, err = New([][]float64{{0, 1}, {0}}, vals, Linear, Options{})
	assert.True(t, errors.As(err, &cfgErr), "axis with a single point")

	_, err = New([][]float64{{0, 1}, {0, 1}}, vals, Method(42), Options{})
	assert.True(t, errors.As(err, &cfgErr), "unknown method")
}

func TestEvalShapeErrors(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{})
	require.NoError(t, err)

	var cfgErr *ConfigError
	_, err = in.Eval(Point(0.5))
	assert.True(t, errors.As(err, &cfgErr), "wrong trailing dimension")

	_, err = in.EvalOpts(Point(0.5, 0.5), EvalOpts{Method: Method(42)})
	assert.True(t, errors.As(err, &cfgErr), "bad method override")
}

func TestGradientUnsupported(t *testing.T) {
	in, err := New([][]float64{{0, 1}, {0, 1}}, xorValues(t), Linear,
		Options{})
	require.NoError(t, err)

	_, err = in.GradientOpts(Point(0.5, 0.5), Method(42))
	var gradErr *GradientError
	assert.True(t, errors.As(err, &gradErr))
}
