package numeric

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Butterworth designs a digital low-pass Butterworth filter of the given
// order with cutoff frequency cutoff (Hz) at sample rate fs (Hz), via the
// analog prototype and the prewarped bilinear transform. It returns the
// numerator (b) and denominator (a) coefficients, each order+1 long, with
// unit gain at DC.
func Butterworth(order int, cutoff, fs float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("numeric: filter order %d, want >= 1", order)
	}
	if cutoff <= 0 || fs <= 0 || cutoff >= fs/2 {
		return nil, nil, fmt.Errorf("numeric: cutoff %g Hz invalid for sample rate %g Hz", cutoff, fs)
	}

	// Prewarp the cutoff so the bilinear transform lands it exactly.
	warped := 2 * fs * math.Tan(math.Pi*cutoff/fs)

	// Analog prototype poles on the left half-plane circle of radius warped.
	poles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		poles[k] = complex(warped, 0) * cmplx.Exp(complex(0, theta))
	}

	// Bilinear transform: s = 2*fs*(z-1)/(z+1). The analog all-pole gain
	// warped^order becomes gain/prod(2*fs - p); zeros all map to z = -1.
	gain := complex(math.Pow(warped, float64(order)), 0)
	zPoles := make([]complex128, order)
	for k, p := range poles {
		d := complex(2*fs, 0) - p
		zPoles[k] = (complex(2*fs, 0) + p) / d
		gain /= d
	}
	zZeros := make([]complex128, order)
	for k := range zZeros {
		zZeros[k] = -1
	}

	b = realPoly(zZeros, gain)
	a = realPoly(zPoles, 1)
	return b, a, nil
}

// realPoly expands gain*prod(z - r) into descending-power coefficients and
// drops the vanishing imaginary parts left by conjugate root pairs.
func realPoly(roots []complex128, gain complex128) []float64 {
	coeff := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeff)+1)
		for i, c := range coeff {
			next[i] += c
			next[i+1] -= c * r
		}
		coeff = next
	}
	out := make([]float64, len(coeff))
	for i, c := range coeff {
		out[i] = real(c * gain)
	}
	return out
}
