package numeric

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"numlab/pkg/stats"
)

func within(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %g)", label, got, want, tol)
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		within(t, got[i], want[i], 1e-12, "linspace")
	}
}

func TestArange(t *testing.T) {
	if got := Arange(0, 10, 2); !reflect.DeepEqual(got, []float64{0, 2, 4, 6, 8}) {
		t.Errorf("arange(0,10,2) = %v", got)
	}
	if got := Arange(3, 0, -1); !reflect.DeepEqual(got, []float64{3, 2, 1}) {
		t.Errorf("arange(3,0,-1) = %v", got)
	}
}

func TestReshapeTranspose(t *testing.T) {
	r, err := Reshape(Arange(0, 12, 1), 3, 4)
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if r[1][0] != 4 || r[2][3] != 11 {
		t.Errorf("reshape rows wrong: %v", r)
	}
	tr := Transpose(r)
	if len(tr) != 4 || len(tr[0]) != 3 {
		t.Errorf("transpose shape (%d,%d), want (4,3)", len(tr), len(tr[0]))
	}
	if _, err := Reshape(Arange(0, 5, 1), 2, 3); err == nil {
		t.Errorf("mismatched reshape did not fail")
	}
}

func TestResampleLength(t *testing.T) {
	x := make([]float64, 100)
	if got := len(Resample(x, 200)); got != 200 {
		t.Errorf("resampled length %d, want 200", got)
	}
	if got := len(Resample(x, 40)); got != 40 {
		t.Errorf("downsampled length %d, want 40", got)
	}
}

func TestResamplePreservesBandlimitedSine(t *testing.T) {
	const n = 100
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 3 * float64(i) / n)
	}
	y := Resample(x, 2*n)
	for j := range y {
		want := math.Sin(2 * math.Pi * 3 * float64(j) / (2 * n))
		within(t, y[j], want, 1e-8, "resampled sine")
	}
}

func TestFFTFreq(t *testing.T) {
	got := FFTFreq(8, 0.1)
	want := []float64{0, 1.25, 2.5, 3.75, -5, -3.75, -2.5, -1.25}
	for i := range want {
		within(t, got[i], want[i], 1e-12, "fftfreq")
	}
}

func TestDetrendZeroMean(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		v := float64(i) * 10.0 / 199
		x[i] = 0.5*v + math.Sin(v)
	}
	xd := Detrend(x)
	mean, err := stats.Mean(xd, nil)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	within(t, mean, 0, 1e-9, "detrended mean")
}

func TestFindPeaks(t *testing.T) {
	sig := []float64{0, 1, 0, 0.5, 0, 2, 0, 1.2, 0}
	got := FindPeaks(sig, 0.8)
	if !reflect.DeepEqual(got, []int{1, 5, 7}) {
		t.Errorf("peaks = %v, want [1 5 7]", got)
	}
	if got := FindPeaks(sig, 3); len(got) != 0 {
		t.Errorf("prominence 3 kept peaks %v", got)
	}
}

func TestButterworth(t *testing.T) {
	b, a, err := Butterworth(4, 50, 1000)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	if len(b) != 5 || len(a) != 5 {
		t.Errorf("coefficient lengths %d/%d, want 5/5", len(b), len(a))
	}
	var sb, sa float64
	for i := range b {
		sb += b[i]
		sa += a[i]
	}
	within(t, sb/sa, 1, 1e-6, "DC gain")
	if a[0] != 1 {
		t.Errorf("a[0] = %v, want monic denominator", a[0])
	}

	if _, _, err := Butterworth(4, 600, 1000); err == nil {
		t.Errorf("cutoff above Nyquist accepted")
	}
}

func TestCurveFitLine(t *testing.T) {
	line := func(x float64, p []float64) float64 { return p[0]*x + p[1] }
	p, err := CurveFit(line, []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, []float64{1, 0})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	within(t, p[0], 2, 1e-3, "slope")
	within(t, p[1], 1, 1e-3, "intercept")
}

func TestCurveFitTooFewPoints(t *testing.T) {
	line := func(x float64, p []float64) float64 { return p[0]*x + p[1] }
	_, err := CurveFit(line, []float64{1}, []float64{2}, []float64{1, 0})
	if !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}

func TestFindRoot(t *testing.T) {
	root, err := FindRoot(func(x float64) float64 { return x*x - 2 }, 1.0)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	within(t, root, math.Sqrt2, 1e-9, "root")

	if _, err := FindRoot(func(x float64) float64 { return 1 }, 0); err == nil {
		t.Errorf("flat function found a root")
	}
}

func TestSolveIVPExponentialDecay(t *testing.T) {
	const k = 0.5
	ts := Linspace(0, 10, 100)
	ys := SolveIVP(func(_, y float64) float64 { return -k * y }, 2.0, ts)
	if len(ys) != len(ts) {
		t.Fatalf("got %d points, want %d", len(ys), len(ts))
	}
	for i, tv := range ts {
		within(t, ys[i], 2*math.Exp(-k*tv), 1e-6, "decay")
	}
}

func TestInterp1D(t *testing.T) {
	f, err := Interp1D([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	within(t, f(1.5), 2.5, 1e-12, "f(1.5)")
	within(t, f(5.0), 19, 1e-12, "extrapolated f(5)")
	within(t, f(-1), -1, 1e-12, "extrapolated f(-1)")

	if _, err := Interp1D([]float64{1}, []float64{1}); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}

func TestDet(t *testing.T) {
	d, err := Det([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("det: %v", err)
	}
	within(t, d, -2, 1e-12, "det")

	if _, err := Det([][]float64{{1, 2}, {3}}); err == nil {
		t.Errorf("ragged matrix accepted")
	}
}

func TestChoice(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	got, err := Choice(r, []string{"A", "B", "C"}, 10, []float64{0.5, 0.3, 0.2})
	if err != nil {
		t.Fatalf("choice: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("drew %d samples, want 10", len(got))
	}
	for _, s := range got {
		if s != "A" && s != "B" && s != "C" {
			t.Errorf("drew unknown label %q", s)
		}
	}

	if _, err := Choice(r, []string{"A"}, 1, []float64{0.4}); err == nil {
		t.Errorf("weights not summing to one accepted")
	}
}
