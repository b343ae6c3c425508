package numeric

import (
	"errors"
	"math"
)

// FindRoot locates a zero of f near x0 by Newton iteration with a
// central-difference derivative. It fails on a vanishing derivative or
// when 100 iterations do not converge to 1e-12.
func FindRoot(f func(float64) float64, x0 float64) (float64, error) {
	const (
		tol     = 1e-12
		maxIter = 100
	)
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}
		h := 1e-7 * math.Max(1, math.Abs(x))
		d := (f(x+h) - f(x-h)) / (2 * h)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, errors.New("numeric: root find stalled on flat derivative")
		}
		x -= fx / d
	}
	return 0, errors.New("numeric: root find did not converge")
}
