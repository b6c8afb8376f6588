/*package bspline fits interpolating B-splines of low polynomial order
through 1D tables of sample values and evaluates them, along with their
first derivatives, at arbitrary coordinates.*/
package bspline

import (
	"fmt"
)

// MaxOrder is the largest spline order Fit accepts.
const MaxOrder = 5

// Spline is an order-k interpolating B-spline through a table of sample
// rows. Sample rows may have any width: a single fit solves every column at
// once, so a Spline can represent a vector-valued curve.
//
// A Spline evaluated at one of its sample coordinates reproduces that
// sample's row exactly. Outside the sampled range the polynomial piece at
// the nearest end is extended, so evaluation is defined and finite
// everywhere.
//
// Splines cache their derivative representation, so they are not thread
// safe.
type Spline struct {
	k     int
	knots []float64
	coefs [][]float64
	width int

	deriv *Spline
}

// Fit fits an order-k interpolating B-spline through the points
// (xs[i], rows[i]). xs must be strictly increasing, every row must have the
// same width, and k must satisfy 1 <= k < len(xs) and k <= MaxOrder.
func Fit(xs []float64, rows [][]float64, k int) (*Spline, error) {
	n := len(xs)
	if n != len(rows) {
		return nil, fmt.Errorf(
			"table given to Fit() has len(xs) = %d but len(rows) = %d",
			n, len(rows),
		)
	} else if n < 2 {
		return nil, fmt.Errorf("table given to Fit() has length of %d", n)
	} else if k < 1 || k > MaxOrder {
		return nil, fmt.Errorf("Fit() given order %d, not in [1, %d]",
			k, MaxOrder)
	} else if k >= n {
		return nil, fmt.Errorf(
			"order %d spline requires at least %d points, but got %d",
			k, k+1, n,
		)
	}

	for i := 0; i < n-1; i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf(
				"table given to Fit() is not strictly increasing",
			)
		}
	}
	width := len(rows[0])
	for i := range rows {
		if len(rows[i]) != width {
			return nil, fmt.Errorf(
				"row %d given to Fit() has width %d, but row 0 has width %d",
				i, len(rows[i]), width,
			)
		}
	}

	t := knotVector(xs, k)

	// Collocation matrix: a[i][j] = B_j(xs[i]). Banded with bandwidth k,
	// but n is small enough that a dense solve is fine.
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	var b [MaxOrder + 1]float64
	for i, x := range xs {
		span := findSpan(t, k, n, x)
		basisAt(t, k, span, x, b[:k+1])
		for r := 0; r <= k; r++ {
			a[i][span-k+r] = b[r]
		}
	}

	coefs := make([][]float64, n)
	for i := range coefs {
		coefs[i] = make([]float64, width)
		copy(coefs[i], rows[i])
	}
	if err := SolveAt(a, coefs); err != nil {
		// Unreachable for the knot vectors built above, which satisfy the
		// Schoenberg-Whitney condition.
		return nil, fmt.Errorf("collocation system could not be solved: %v",
			err)
	}

	return &Spline{k: k, knots: t, coefs: coefs, width: width}, nil
}

// Order returns the polynomial order of the spline.
func (sp *Spline) Order() int { return sp.k }

// Width returns the width of the rows the spline was fit through.
func (sp *Spline) Width() int { return sp.width }

// At evaluates the spline at x and returns the resulting row. If an output
// slice of the correct width is given, the row is written into it (the
// slice is still returned as a convenience).
func (sp *Spline) At(x float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) == 0 {
		res = make([]float64, sp.width)
	} else {
		res = out[0]
		for i := range res {
			res[i] = 0
		}
	}

	n := len(sp.coefs)
	span := findSpan(sp.knots, sp.k, n, x)
	var b [MaxOrder + 1]float64
	basisAt(sp.knots, sp.k, span, x, b[:sp.k+1])

	for r := 0; r <= sp.k; r++ {
		c, w := sp.coefs[span-sp.k+r], b[r]
		for i := range res {
			res[i] += w * c[i]
		}
	}
	return res
}

// Deriv evaluates the spline's first derivative at x and returns the
// resulting row. The same output convention as At applies.
func (sp *Spline) Deriv(x float64, out ...[]float64) []float64 {
	if sp.deriv == nil {
		sp.deriv = sp.derivative()
	}
	return sp.deriv.At(x, out...)
}

// derivative returns the order k-1 spline representing d/dx of sp.
func (sp *Spline) derivative() *Spline {
	n, k, t := len(sp.coefs), sp.k, sp.knots

	coefs := make([][]float64, n-1)
	for j := range coefs {
		coefs[j] = make([]float64, sp.width)
		dt := t[j+k+1] - t[j+1]
		if dt == 0 {
			continue
		}
		s := float64(k) / dt
		for i := range coefs[j] {
			coefs[j][i] = s * (sp.coefs[j+1][i] - sp.coefs[j][i])
		}
	}

	return &Spline{
		k: k - 1, knots: t[1 : len(t)-1], coefs: coefs, width: sp.width,
	}
}

// knotVector returns the clamped knot vector used by Fit. Interior knots sit
// on the sample coordinates for odd k and halfway between them for even k,
// which keeps the collocation matrix nonsingular.
func knotVector(xs []float64, k int) []float64 {
	n := len(xs)
	t := make([]float64, n+k+1)
	for i := 0; i <= k; i++ {
		t[i] = xs[0]
		t[n+i] = xs[n-1]
	}

	if k%2 == 1 {
		h := (k + 1) / 2
		for i := 0; i < n-k-1; i++ {
			t[k+1+i] = xs[h+i]
		}
	} else {
		h := k / 2
		for i := 0; i < n-k-1; i++ {
			t[k+1+i] = (xs[h+i] + xs[h+i+1]) / 2
		}
	}
	return t
}

// findSpan returns the index i of the knot span [t[i], t[i+1]) containing x,
// clamped to the sampled range so that out-of-range coordinates reuse the
// boundary span's polynomial.
func findSpan(t []float64, k, n int, x float64) int {
	if x >= t[n] {
		return n - 1
	} else if x <= t[k] {
		return k
	}

	lo, hi := k, n
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// basisAt fills b with the k+1 basis values that are nonzero on the given
// span, b[r] = B_{span-k+r}(x). This is the standard Cox-de Boor recurrence,
// which extends the boundary polynomials for x outside the knot range.
func basisAt(t []float64, k, span int, x float64, b []float64) {
	var left, right [MaxOrder + 1]float64
	b[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := b[r] / (right[r+1] + left[j-r])
			b[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		b[j] = saved
	}
}
