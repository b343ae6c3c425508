package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Det returns the determinant of a square nested-slice matrix.
func Det(a [][]float64) (float64, error) {
	n := len(a)
	if n == 0 {
		return 0, fmt.Errorf("numeric: determinant of empty matrix")
	}
	flat := make([]float64, 0, n*n)
	for i, row := range a {
		if len(row) != n {
			return 0, fmt.Errorf("numeric: row %d has %d columns in a %d-row matrix", i, len(row), n)
		}
		flat = append(flat, row...)
	}
	return mat.Det(mat.NewDense(n, n, flat)), nil
}
