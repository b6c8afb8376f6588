package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/phil-mansfield/regrid/interpolate"
	"github.com/phil-mansfield/regrid/io"
)

func main() {
	var (
		eval, exampleConfig string
		preview             bool
	)
	vars := map[string]*string{
		"Eval":          &eval,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&eval, "Eval", "",
		"Configuration file for [Eval] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. 'Eval' is the only accepted argument.",
	)
	flag.BoolVar(
		&preview, "Preview", false,
		"Print a terminal plot of the interpolant before writing output "+
			"files. Only supported for 1D grids.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Eval":
		con, err := io.ReadEvalConfig(eval)
		if err != nil {
			log.Fatal(err.Error())
		}
		evalMain(con, preview)

	case "ExampleConfig":
		switch exampleConfig {
		case "Eval":
			fmt.Println(io.ExampleEvalFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. 'Eval' is the " +
					"only recognized argument.",
			)
		}
	default:
		panic("Impossible")
	}
}

func evalMain(con *io.EvalConfig, preview bool) {
	axes := make([][]float64, len(con.AxisFile))
	dims := make([]int, len(axes))
	for i, fname := range con.AxisFile {
		axis, err := io.ReadAxis(fname)
		if err != nil {
			log.Fatal(err.Error())
		}
		axes[i], dims[i] = axis, len(axis)
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

	pts, err := io.ReadPoints(con.PointsFile, interp.NDim())
	if err != nil {
		log.Fatal(err.Error())
	}

	if preview {
		if interp.NDim() != 1 {
			log.Fatal("'Preview' is only supported for 1D grids.")
		}
		previewPlot(interp, axes[0])
	}

	out, err := interp.Eval(pts)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := io.WriteValues(con.OutputFile, pts, out); err != nil {
		log.Fatal(err.Error())
	}

	if con.GradientFile != "" {
		// Served from the evaluation cache of the Eval call above.
		grads, err := interp.Gradient(pts)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = io.WriteGradients(con.GradientFile, pts, grads)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

// previewPlot samples the interpolant's first output channel across the
// axis range and prints a terminal plot.
func previewPlot(interp *interpolate.Interp, axis []float64) {
	n := 80
	lo, hi := axis[0], axis[len(axis)-1]

	coords := make([]float64, n)
	for i := range coords {
		coords[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	pts, err := interpolate.NewArray([]int{n, 1}, coords)
	if err != nil {
		log.Fatal(err.Error())
	}
	out, err := interp.EvalOpts(
		pts, interpolate.EvalOpts{NoGradients: true},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	ch := out.Size() / n
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = out.Data[i*ch]
	}

	fmt.Println(asciigraph.Plot(samples,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(
			fmt.Sprintf("interpolant over [%g, %g]", lo, hi),
		),
	))
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but regrid only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
