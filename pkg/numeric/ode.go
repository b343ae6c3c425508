package numeric

// SolveIVP integrates dy/dt = f(t, y) from y(ts[0]) = y0 across the
// caller's time grid with classical fourth-order Runge-Kutta steps. The
// result holds y at every grid point, so len(out) == len(ts).
func SolveIVP(f func(t, y float64) float64, y0 float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	if len(ts) == 0 {
		return out
	}
	y := y0
	out[0] = y
	for i := 1; i < len(ts); i++ {
		t := ts[i-1]
		h := ts[i] - t
		k1 := f(t, y)
		k2 := f(t+h/2, y+h/2*k1)
		k3 := f(t+h/2, y+h/2*k2)
		k4 := f(t+h, y+h*k3)
		y += h / 6 * (k1 + 2*k2 + 2*k3 + k4)
		out[i] = y
	}
	return out
}
