package interpolate

// checkBounds fails with a BoundsError naming the offending axis if any of
// the flattened points lies outside the grid's domain. Axes are checked in
// order, before any numeric work is done.
func checkBounds(axes [][]float64, pts []float64, n int) error {
	for i, axis := range axes {
		lo, hi := axis[0], axis[len(axis)-1]
		for p := 0; p*n < len(pts); p++ {
			x := pts[p*n+i]
			if x < lo || x > hi {
				return &BoundsError{Axis: i, Value: x, Min: lo, Max: hi}
			}
		}
	}
	return nil
}

// outOfBounds flags each flattened point that falls outside the domain in
// any axis. The mask only drives fill-value substitution of primal results:
// out-of-range points are still evaluated by spline extrapolation, and
// their gradients always carry the extrapolated derivative.
func outOfBounds(axes [][]float64, pts []float64, n int) []bool {
	mask := make([]bool, len(pts)/n)
	for p := range mask {
		for i, axis := range axes {
			x := pts[p*n+i]
			if x < axis[0] || x > axis[len(axis)-1] {
				mask[p] = true
				break
			}
		}
	}
	return mask
}
