package bspline

import (
	"fmt"
	"math"
)

// SolveAt solves the linear system a*x = b in place for any number of
// right hand sides, where b holds one row per equation. a is destroyed and
// b is overwritten with the solution rows. Gaussian elimination with
// partial pivoting is used.
func SolveAt(a [][]float64, b [][]float64) error {
	n := len(a)
	if len(b) != n {
		return fmt.Errorf("system has %d equations but %d result rows",
			n, len(b))
	}
	for i := range a {
		if len(a[i]) != n {
			return fmt.Errorf("equation %d has %d terms in an "+
				"%d-unknown system", i, len(a[i]), n)
		}
	}

	for col := 0; col < n; col++ {
		// Pivot on the largest remaining entry in this column.
		p, max := col, math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if abs := math.Abs(a[r][col]); abs > max {
				p, max = r, abs
			}
		}
		if max == 0 {
			return fmt.Errorf("matrix is singular")
		}
		a[col], a[p] = a[p], a[col]
		b[col], b[p] = b[p], b[col]

		piv := a[col][col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / piv
			if f == 0 {
				continue
			}
			a[r][col] = 0
			for c := col + 1; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			brow, bcol := b[r], b[col]
			for i := range brow {
				brow[i] -= f * bcol[i]
			}
		}
	}

	// Back substitution.
	for col := n - 1; col >= 0; col-- {
		brow := b[col]
		for r := col + 1; r < n; r++ {
			f := a[col][r]
			if f == 0 {
				continue
			}
			for i := range brow {
				brow[i] -= f * b[r][i]
			}
		}
		piv := a[col][col]
		for i := range brow {
			brow[i] /= piv
		}
	}
	return nil
}
