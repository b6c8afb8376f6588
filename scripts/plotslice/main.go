/*plotslice plots a 1D slice through an interpolated surface with
matplotlib. It reads the same [Eval] configuration file as the regrid
command, varies one axis across its full range, and holds every other axis
fixed at the given coordinates.

$ plotslice -Config eval.cfg -Axis 0 [-Out slice.png] fixed_coord ...

One fixed coordinate must be given per remaining axis, in axis order.*/
package main

import (
	"flag"
	"log"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/regrid/interpolate"
	"github.com/phil-mansfield/regrid/io"
)

const samples = 200

func main() {
	var (
		config, out string
		axis        int
	)
	flag.StringVar(&config, "Config", "",
		"Configuration file containing an [Eval] section.")
	flag.StringVar(&out, "Out", "",
		"Image file the plot is saved to. If unset, the plot is shown "+
			"interactively.")
	flag.IntVar(&axis, "Axis", 0, "Index of the axis varied by the slice.")
	flag.Parse()

	if config == "" {
		log.Fatal("Must supply a 'Config' value.")
	}
	con, err := io.ReadEvalConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}

	axes := make([][]float64, len(con.AxisFile))
	dims := make([]int, len(axes))
	for i, fname := range con.AxisFile {
		if axes[i], err = io.ReadAxis(fname); err != nil {
			log.Fatal(err.Error())
		}
		dims[i] = len(axes[i])
	}
	if axis < 0 || axis >= len(axes) {
		log.Fatalf("'Axis' value %d out of range for a %d-dimensional "+
			"grid.", axis, len(axes))
	}

	fixed := flag.Args()
	if len(fixed) != len(axes)-1 {
		log.Fatalf("Need %d fixed coordinates for a slice through a "+
			"%d-dimensional grid, but got %d.",
			len(axes)-1, len(axes), len(fixed))
	}

	vals, err := io.ReadValues(con.ValueFile, dims, con.Outputs)
	if err != nil {
		log.Fatal(err.Error())
	}
	interp, err := interpolate.New(
		axes, vals, con.SplineMethod(), con.Options(),
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	pt := make([]float64, len(axes))
	fi := 0
	for i := range pt {
		if i == axis {
			continue
		}
		pt[i], err = strconv.ParseFloat(fixed[fi], 64)
		if err != nil {
			log.Fatalf("Could not parse fixed coordinate '%s'.", fixed[fi])
		}
		fi++
	}

	xs, ys := sliceCurve(interp, axes[axis], axis, pt)
	nodeXs, nodeYs := sliceNodes(interp, axes[axis], axis, pt)

	plt.Reset()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Plot(nodeXs, nodeYs, "ok")
	plt.XLabel("axis " + strconv.Itoa(axis))
	if out == "" {
		plt.Show()
	} else {
		plt.SaveFig(out)
	}
	plt.Execute()
}

// sliceCurve samples the interpolant's first output channel along the
// varied axis.
func sliceCurve(
	interp *interpolate.Interp, axisCoords []float64, axis int, pt []float64,
) (xs, ys []float64) {
	lo := axisCoords[0]
	hi := axisCoords[len(axisCoords)-1]

	xs, ys = make([]float64, samples), make([]float64, samples)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(samples-1)
		ys[i] = evalAt(interp, axis, xs[i], pt)
	}
	return xs, ys
}

// sliceNodes evaluates the interpolant at the varied axis's own sample
// coordinates, marking where the slice crosses grid planes.
func sliceNodes(
	interp *interpolate.Interp, axisCoords []float64, axis int, pt []float64,
) (xs, ys []float64) {
	xs = make([]float64, len(axisCoords))
	ys = make([]float64, len(axisCoords))
	for i, x := range axisCoords {
		xs[i], ys[i] = x, evalAt(interp, axis, x, pt)
	}
	return xs, ys
}

func evalAt(
	interp *interpolate.Interp, axis int, x float64, pt []float64,
) float64 {
	coords := make([]float64, len(pt))
	copy(coords, pt)
	coords[axis] = x

	out, err := interp.EvalOpts(
		interpolate.Point(coords...),
		interpolate.EvalOpts{NoGradients: true},
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	return out.Data[0]
}
