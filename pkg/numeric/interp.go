package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"numlab/pkg/stats"
)

// Interp1D returns a linear interpolant over the sample points, which
// must be in strictly increasing x order. Outside the sampled range the
// interpolant extrapolates along the nearest edge segment.
func Interp1D(xs, ys []float64) (func(float64) float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("numeric: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("numeric: interpolation needs two points: %w", stats.ErrInsufficientData)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("numeric: interpolation fit: %w", err)
	}

	n := len(xs)
	loSlope := (ys[1] - ys[0]) / (xs[1] - xs[0])
	hiSlope := (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	return func(x float64) float64 {
		switch {
		case x < xs[0]:
			return ys[0] + loSlope*(x-xs[0])
		case x > xs[n-1]:
			return ys[n-1] + hiSlope*(x-xs[n-1])
		default:
			return pl.Predict(x)
		}
	}, nil
}
