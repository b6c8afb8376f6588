package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/regrid/interpolate"
)

// WriteValues writes one row per query point: the point's coordinates
// followed by the interpolated output channels.
func WriteValues(fname string, pts, vals *interpolate.Array) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	ndim := pts.Shape[len(pts.Shape)-1]
	pn := pts.Size() / ndim
	ch := vals.Size() / pn

	fmt.Fprintf(f, "# %d point coordinates, then %d output channels.\n",
		ndim, ch)
	for p := 0; p < pn; p++ {
		for i := 0; i < ndim; i++ {
			fmt.Fprintf(f, "%.10g ", pts.Data[p*ndim+i])
		}
		for c := 0; c < ch; c++ {
			fmt.Fprintf(f, "%.10g ", vals.Data[p*ch+c])
		}
		fmt.Fprintf(f, "\n")
	}
	return nil
}

// WriteGradients writes one row per query point: the point's coordinates
// followed by, for each query axis in order, the partial derivatives of
// every output channel with respect to that axis's coordinate.
func WriteGradients(fname string, pts, grads *interpolate.Array) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	ndim := pts.Shape[len(pts.Shape)-1]
	pn := pts.Size() / ndim
	width := grads.Size() / pn

	fmt.Fprintf(f, "# %d point coordinates, then %d partial derivatives "+
		"(axis index varies slowest).\n", ndim, width)
	for p := 0; p < pn; p++ {
		for i := 0; i < ndim; i++ {
			fmt.Fprintf(f, "%.10g ", pts.Data[p*ndim+i])
		}
		for g := 0; g < width; g++ {
			fmt.Fprintf(f, "%.10g ", grads.Data[p*width+g])
		}
		fmt.Fprintf(f, "\n")
	}
	return nil
}
