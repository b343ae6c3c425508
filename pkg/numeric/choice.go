package numeric

import (
	"fmt"
	"math"
	"math/rand"
)

// Choice draws n labels with replacement using the given probability
// weights, which must pair with labels and sum to one.
func Choice(r *rand.Rand, labels []string, n int, p []float64) ([]string, error) {
	if len(labels) != len(p) {
		return nil, fmt.Errorf("numeric: %d labels against %d weights", len(labels), len(p))
	}
	total := 0.0
	for _, w := range p {
		if w < 0 {
			return nil, fmt.Errorf("numeric: negative weight %g", w)
		}
		total += w
	}
	if math.Abs(total-1) > 1e-9 {
		return nil, fmt.Errorf("numeric: weights sum to %g, want 1", total)
	}

	out := make([]string, n)
	for i := range out {
		u := r.Float64()
		acc := 0.0
		pick := len(labels) - 1
		for j, w := range p {
			acc += w
			if u < acc {
				pick = j
				break
			}
		}
		out[i] = labels[pick]
	}
	return out, nil
}
