package interpolate

import (
	"github.com/phil-mansfield/regrid/bspline"
)

// folder folds a value table against query points one axis at a time, last
// axis first, each fold removing one axis from the working array. Stack
// depth scales with the number of grid axes, which is small in practice.
type folder struct {
	axes   [][]float64
	orders []int
	ch     int // trailing output channels per grid cell
}

// fitAxis fits a spline along the last of the given axes through data,
// which is laid out row-major over those axes plus the trailing channels.
// The fit batches over every leading index and channel at once.
func (f *folder) fitAxis(data []float64, dims []int) (*bspline.Spline, error) {
	i := len(dims) - 1
	rows, ch := dims[i], f.ch
	blocks := 1
	for _, d := range dims[:i] {
		blocks *= d
	}

	table := make([][]float64, rows)
	for j := range table {
		r := make([]float64, blocks*ch)
		for b := 0; b < blocks; b++ {
			copy(r[b*ch:(b+1)*ch], data[(b*rows+j)*ch:(b*rows+j+1)*ch])
		}
		table[j] = r
	}
	return bspline.Fit(f.axes[i], table, f.orders[i])
}

// foldValue recursively folds data, laid out over the leading len(dims)
// grid axes, down to a single row of trailing channels by fitting one
// spline per axis and evaluating it at that axis's coordinate in x. No
// derivatives are produced.
func (f *folder) foldValue(
	data []float64, dims []int, x []float64,
) ([]float64, error) {
	i := len(dims) - 1
	sp, err := f.fitAxis(data, dims)
	if err != nil {
		return nil, err
	}
	v := sp.At(x[i])
	if i == 0 {
		return v, nil
	}
	return f.foldValue(v, dims[:i], x[:i])
}

// foldGrad is foldValue's gradient-carrying form. In addition to the folded
// value, it fills grads[i] with the partial derivative of the result with
// respect to axis i's coordinate. The partial produced while folding axis i
// still depends on axes 0..i-1, so it is folded across those axes with
// foldValue: that inner fold is the chain rule, and it needs no further
// derivatives of its own.
func (f *folder) foldGrad(
	data []float64, dims []int, x []float64, grads [][]float64,
) ([]float64, error) {
	i := len(dims) - 1
	sp, err := f.fitAxis(data, dims)
	if err != nil {
		return nil, err
	}

	if i == 0 {
		grads[0] = sp.Deriv(x[0])
		return sp.At(x[0]), nil
	}

	grads[i], err = f.foldValue(sp.Deriv(x[i]), dims[:i], x[:i])
	if err != nil {
		return nil, err
	}
	return f.foldGrad(sp.At(x[i]), dims[:i], x[:i], grads)
}

// evalBatch evaluates the flattened query points pts against values, laid
// out row-major over dims plus the trailing channels. vals holds one row of
// channels per point. If grad is set, grads holds, per point, one partial
// row per axis in axis order.
func (f *folder) evalBatch(
	values []float64, dims []int, pts []float64, grad bool,
) (vals, grads []float64, err error) {
	n, ch := len(dims), f.ch
	pn := len(pts) / n

	vals = make([]float64, pn*ch)
	if grad {
		grads = make([]float64, pn*n*ch)
	}

	// A single spline along the last axis serves every point, amortizing
	// the largest fit across the whole batch.
	top, err := f.fitAxis(values, dims)
	if err != nil {
		return nil, nil, err
	}

	for p := 0; p < pn; p++ {
		x := pts[p*n : (p+1)*n]
		v := top.At(x[n-1])
		var d []float64
		if grad {
			d = top.Deriv(x[n-1])
		}

		if n == 1 {
			copy(vals[p*ch:(p+1)*ch], v)
			if grad {
				copy(grads[p*ch:(p+1)*ch], d)
			}
			continue
		}

		pg := make([][]float64, n)
		if grad {
			pg[n-1], err = f.foldValue(d, dims[:n-1], x[:n-1])
			if err != nil {
				return nil, nil, err
			}
			v, err = f.foldGrad(v, dims[:n-1], x[:n-1], pg)
		} else {
			v, err = f.foldValue(v, dims[:n-1], x[:n-1])
		}
		if err != nil {
			return nil, nil, err
		}

		copy(vals[p*ch:(p+1)*ch], v)
		if grad {
			for i := range pg {
				copy(grads[(p*n+i)*ch:(p*n+i+1)*ch], pg[i])
			}
		}
	}
	return vals, grads, nil
}
