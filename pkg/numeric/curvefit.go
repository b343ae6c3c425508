package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"numlab/pkg/stats"
)

// Model evaluates a parametric curve at x with parameters p.
type Model func(x float64, p []float64) float64

// CurveFit fits model to the (xs, ys) pairs by least squares, starting
// from p0, and returns the fitted parameters. The minimization is
// gonum's Nelder-Mead on the residual sum of squares.
func CurveFit(model Model, xs, ys, p0 []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("numeric: mismatched sample lengths")
	}
	if len(xs) < len(p0) {
		return nil, fmt.Errorf("numeric: %d samples cannot determine %d parameters: %w",
			len(xs), len(p0), stats.ErrInsufficientData)
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			ssr := 0.0
			for i, x := range xs {
				r := ys[i] - model(x, p)
				ssr += r * r
			}
			return ssr
		},
	}

	init := make([]float64, len(p0))
	copy(init, p0)
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("numeric: curve fit: %w", err)
	}
	return result.X, nil
}
