// Package stats computes aggregates over numeric sequences with explicit
// missing-value exclusion. The arithmetic is gonum's; this package owns
// the masking and the insufficient-data errors.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData reports too few valid observations for a statistic.
var ErrInsufficientData = errors.New("insufficient data")

// compact returns the values of xs whose mask entry is false. A nil mask
// keeps everything.
func compact(xs []float64, miss []bool) []float64 {
	if miss == nil {
		return xs
	}
	out := make([]float64, 0, len(xs))
	for i, v := range xs {
		if !miss[i] {
			out = append(out, v)
		}
	}
	return out
}

// compactPairs keeps the (x, y) pairs where neither side is missing.
func compactPairs(xs, ys []float64, miss []bool) ([]float64, []float64) {
	ox := make([]float64, 0, len(xs))
	oy := make([]float64, 0, len(ys))
	for i := range xs {
		if miss != nil && miss[i] {
			continue
		}
		ox = append(ox, xs[i])
		oy = append(oy, ys[i])
	}
	return ox, oy
}

// Count returns the number of non-missing values.
func Count(xs []float64, miss []bool) int {
	return len(compact(xs, miss))
}

// Mean returns the arithmetic mean of the non-missing values.
func Mean(xs []float64, miss []bool) (float64, error) {
	v := compact(xs, miss)
	if len(v) == 0 {
		return 0, ErrInsufficientData
	}
	return stat.Mean(v, nil), nil
}

// Std returns the sample standard deviation of the non-missing values.
func Std(xs []float64, miss []bool) (float64, error) {
	v := compact(xs, miss)
	if len(v) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.StdDev(v, nil), nil
}

// Min returns the smallest non-missing value.
func Min(xs []float64, miss []bool) (float64, error) {
	v := compact(xs, miss)
	if len(v) == 0 {
		return 0, ErrInsufficientData
	}
	min := v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
	}
	return min, nil
}

// Max returns the largest non-missing value.
func Max(xs []float64, miss []bool) (float64, error) {
	v := compact(xs, miss)
	if len(v) == 0 {
		return 0, ErrInsufficientData
	}
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	return max, nil
}

// Correlation returns the Pearson correlation of paired sequences. Pairs
// where the mask is set are excluded; fewer than two surviving pairs is
// an insufficient-data error.
func Correlation(xs, ys []float64, miss []bool) (float64, error) {
	if len(xs) != len(ys) {
		return 0, errors.New("stats: mismatched sequence lengths")
	}
	vx, vy := compactPairs(xs, ys, miss)
	if len(vx) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.Correlation(vx, vy, nil), nil
}

// Fit holds the result of a simple linear regression.
type Fit struct {
	Slope     float64
	Intercept float64
	R         float64
}

// Linregress fits y = Slope*x + Intercept by ordinary least squares and
// reports the correlation coefficient alongside.
func Linregress(xs, ys []float64) (Fit, error) {
	if len(xs) != len(ys) {
		return Fit{}, errors.New("stats: mismatched sequence lengths")
	}
	if len(xs) < 2 {
		return Fit{}, ErrInsufficientData
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Fit{Slope: slope, Intercept: intercept, R: stat.Correlation(xs, ys, nil)}, nil
}
