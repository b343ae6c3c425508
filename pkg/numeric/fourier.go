package numeric

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"numlab/pkg/stats"
)

// Resample changes x to length n in the frequency domain: forward real
// FFT, spectrum truncation or zero padding, inverse FFT. Amplitude is
// preserved across the length change.
func Resample(x []float64, n int) []float64 {
	if len(x) == 0 || n <= 0 {
		return nil
	}
	fft := fourier.NewFFT(len(x))
	coeff := fft.Coefficients(nil, x)

	newCoeff := make([]complex128, n/2+1)
	copy(newCoeff, coeff[:min(len(coeff), len(newCoeff))])

	inv := fourier.NewFFT(n)
	out := inv.Sequence(nil, newCoeff)
	// gonum's transform pair is unnormalized; dividing by the original
	// length leaves amplitudes unchanged (scipy.signal.resample scaling).
	scale := 1 / float64(len(x))
	for i := range out {
		out[i] *= scale
	}
	return out
}

// FFTFreq returns the frequency-bin labels for an n-point transform with
// sample spacing d, in the conventional order: non-negative bins first,
// then the negative bins.
func FFTFreq(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		out[i] = float64(i) * scale
	}
	for i := half; i < n; i++ {
		out[i] = float64(i-n) * scale
	}
	return out
}

// Detrend removes the least-squares straight line from x over the index
// grid, leaving a zero-mean residual.
func Detrend(x []float64) []float64 {
	if len(x) < 2 {
		out := make([]float64, len(x))
		return out
	}
	idx := make([]float64, len(x))
	for i := range idx {
		idx[i] = float64(i)
	}
	fit, err := stats.Linregress(idx, x)
	if err != nil {
		out := make([]float64, len(x))
		copy(out, x)
		return out
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - (fit.Slope*idx[i] + fit.Intercept)
	}
	return out
}
