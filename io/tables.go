package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/regrid/interpolate"
)

// ReadAxis reads one grid axis from the first column of a whitespace-
// separated table file.
func ReadAxis(fname string) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{0}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadValues reads a training value table with one column per output
// channel. Rows run over the grid cells in row-major order, last axis
// fastest. dims gives the grid's axis lengths in order.
func ReadValues(
	fname string, dims []int, outputs int,
) (*interpolate.Array, error) {
	colIdxs := make([]int, outputs)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	cells := 1
	for _, d := range dims {
		cells *= d
	}
	for i, col := range cols {
		if len(col) != cells {
			return nil, fmt.Errorf(
				"Column %d of value file %s has %d rows, but the grid "+
					"has %d cells.", i, fname, len(col), cells,
			)
		}
	}

	shape := append([]int{}, dims...)
	if outputs > 1 {
		shape = append(shape, outputs)
	}
	data := make([]float64, cells*outputs)
	for c, col := range cols {
		for cell, v := range col {
			data[cell*outputs+c] = v
		}
	}
	return interpolate.NewArray(shape, data)
}

// ReadPoints reads query points with one column per grid dimension and one
// row per point.
func ReadPoints(fname string, ndim int) (*interpolate.Array, error) {
	colIdxs := make([]int, ndim)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	pn := len(cols[0])
	data := make([]float64, pn*ndim)
	for i, col := range cols {
		if len(col) != pn {
			return nil, fmt.Errorf(
				"Column %d of points file %s has %d rows, but column 0 "+
					"has %d.", i, fname, len(col), pn,
			)
		}
		for p, v := range col {
			data[p*ndim+i] = v
		}
	}
	return interpolate.NewArray([]int{pn, ndim}, data)
}
