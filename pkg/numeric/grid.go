// Package numeric wraps the external numeric routines the examples call:
// curve fitting, root finding, ODE integration, Fourier resampling, peak
// detection, filter design, interpolation, and determinants. Each wrapper
// constructs the routine's input, calls it once, and returns the result;
// there are no retries or fallbacks.
package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Arange returns values from start up to but excluding stop, step apart.
func Arange(start, stop, step float64) []float64 {
	if step == 0 {
		return nil
	}
	var out []float64
	if step > 0 {
		for v := start; v < stop; v += step {
			out = append(out, v)
		}
	} else {
		for v := start; v > stop; v += step {
			out = append(out, v)
		}
	}
	return out
}

// Reshape views a flat sequence as rows x cols nested slices.
func Reshape(x []float64, rows, cols int) ([][]float64, error) {
	if rows*cols != len(x) {
		return nil, fmt.Errorf("numeric: cannot reshape %d values to %dx%d", len(x), rows, cols)
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = x[i*cols : (i+1)*cols]
	}
	return out, nil
}

// Transpose returns the transpose of a rectangular nested slice.
func Transpose(a [][]float64) [][]float64 {
	if len(a) == 0 {
		return nil
	}
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}
	return out
}
