/*package io reads the configuration and plain-text data tables consumed by
the regrid command and writes its result tables.*/
package io

import (
	"fmt"
	"strconv"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/regrid/interpolate"
)

const ExampleEvalFile = `[Eval]

#######################
# Required Parameters #
#######################

# One AxisFile per grid dimension, in order. Each file contains a single
# column holding that axis's strictly ascending sample coordinates.
AxisFile = path/to/x_axis.txt
AxisFile = path/to/y_axis.txt

# Training values, one column per output channel. Rows run over the grid in
# row-major order: the last axis varies fastest. For the two axis files
# above with the classic fuzzy-XOR table, this file would hold the column
# 0, 1, 1, 0.
ValueFile = path/to/values.txt

# Query points, one column per grid dimension.
PointsFile = path/to/points.txt

# Interpolated values are written here, one row per query point.
OutputFile = path/to/output.txt

#######################
# Optional Parameters #
#######################

# Order of the fitting spline polynomials. Valid methods are slinear,
# cubic, and quintic. Default is cubic.
# Method = cubic

# Number of output channels (columns) in ValueFile. Default is 1.
# Outputs = 1

# Fail on query points outside the grid's domain instead of extrapolating.
# BoundsError = false

# Value substituted for the results (not the gradients) of out-of-domain
# query points. Leave unset to report extrapolated values instead.
# FillValue = 0.0

# Fail when an axis has too few points for the chosen method, instead of
# reducing the spline order for that axis alone.
# StrictOrders = false

# If set, analytic gradients with respect to the query coordinates are
# written here, one row per query point.
# GradientFile = path/to/gradients.txt`

type EvalConfig struct {
	// Required
	AxisFile   []string
	ValueFile  string
	PointsFile string
	OutputFile string

	// Optional
	Method       string
	Outputs      int
	BoundsError  bool
	FillValue    string
	StrictOrders bool
	GradientFile string

	// Set by CheckInit.
	parsedMethod interpolate.Method
	parsedFill   *float64
}

type EvalWrapper struct {
	Eval EvalConfig
}

func DefaultEvalWrapper() *EvalWrapper {
	con := EvalConfig{}
	con.Method = "cubic"
	con.Outputs = 1
	return &EvalWrapper{con}
}

// ReadEvalConfig reads and validates an [Eval] configuration file.
func ReadEvalConfig(fname string) (*EvalConfig, error) {
	wrap := DefaultEvalWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Eval
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *EvalConfig) CheckInit() error {
	if len(con.AxisFile) == 0 {
		return fmt.Errorf("Need to specify at least one 'AxisFile' value.")
	} else if con.ValueFile == "" {
		return fmt.Errorf("Need to specify a 'ValueFile' value.")
	} else if con.PointsFile == "" {
		return fmt.Errorf("Need to specify a 'PointsFile' value.")
	} else if con.OutputFile == "" {
		return fmt.Errorf("Need to specify an 'OutputFile' value.")
	} else if con.Outputs <= 0 {
		return fmt.Errorf("'Outputs' value must be positive, but is %d.",
			con.Outputs)
	}

	method, err := interpolate.ParseMethod(con.Method)
	if err != nil {
		return fmt.Errorf("Invalid 'Method' value: %v", err)
	}
	con.parsedMethod = method

	con.parsedFill = nil
	if con.FillValue != "" {
		fill, err := strconv.ParseFloat(con.FillValue, 64)
		if err != nil {
			return fmt.Errorf("Invalid 'FillValue' value '%s'.",
				con.FillValue)
		}
		con.parsedFill = &fill
	}

	return nil
}

// SplineMethod returns the parsed 'Method' value. Only valid after a
// successful CheckInit.
func (con *EvalConfig) SplineMethod() interpolate.Method { return con.parsedMethod }

// Fill returns the parsed 'FillValue' value, or nil if it was not set. Only
// valid after a successful CheckInit.
func (con *EvalConfig) Fill() *float64 { return con.parsedFill }

// Options assembles the interpolator options the config describes. Only
// valid after a successful CheckInit.
func (con *EvalConfig) Options() interpolate.Options {
	return interpolate.Options{
		BoundsError:  con.BoundsError,
		FillValue:    con.parsedFill,
		StrictOrders: con.StrictOrders,
	}
}
