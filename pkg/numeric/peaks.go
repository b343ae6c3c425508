package numeric

// FindPeaks returns the indices of interior local maxima whose prominence
// meets the threshold. Prominence is the peak height above the higher of
// the two lowest points separating it from higher terrain on either side.
func FindPeaks(x []float64, prominence float64) []int {
	var peaks []int
	for i := 1; i < len(x)-1; i++ {
		if !(x[i] > x[i-1] && x[i] > x[i+1]) {
			continue
		}
		if peakProminence(x, i) >= prominence {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

func peakProminence(x []float64, peak int) float64 {
	h := x[peak]

	low := h
	for i := peak - 1; i >= 0; i-- {
		if x[i] > h {
			break
		}
		if x[i] < low {
			low = x[i]
		}
	}
	leftBase := low

	low = h
	for i := peak + 1; i < len(x); i++ {
		if x[i] > h {
			break
		}
		if x[i] < low {
			low = x[i]
		}
	}
	rightBase := low

	base := leftBase
	if rightBase > base {
		base = rightBase
	}
	return h - base
}
