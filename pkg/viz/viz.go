// Package viz renders the example figures with gonum/plot. Every builder
// takes data, a title, and an output path, writes a PNG, and returns any
// rendering error.
package viz

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	seriesBlue = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	seriesRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Line draws a single labeled line.
func Line(xs, ys []float64, label, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	l, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return fmt.Errorf("viz: line: %w", err)
	}
	l.Color = seriesBlue
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add(label, l)

	return save(p, 5*vg.Inch, 3*vg.Inch, path)
}

// Panels draws one line per series in side-by-side subplots sharing the
// same x values.
func Panels(xs []float64, series [][]float64, labels []string, path string) error {
	if len(series) != len(labels) {
		return fmt.Errorf("viz: %d series against %d labels", len(series), len(labels))
	}
	plots := make([][]*plot.Plot, 1)
	plots[0] = make([]*plot.Plot, len(series))
	for i, ys := range series {
		p := plot.New()
		p.Title.Text = labels[i]
		l, err := plotter.NewLine(xyPoints(xs, ys))
		if err != nil {
			return fmt.Errorf("viz: panel %q: %w", labels[i], err)
		}
		l.Color = seriesBlue
		p.Add(l)
		p.Legend.Add(labels[i], l)
		plots[0][i] = p
	}

	img := vgimg.New(vg.Length(len(series))*4*vg.Inch, 3*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: len(series), PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	for i, p := range plots[0] {
		p.Draw(canvases[0][i])
	}
	return writePNG(img, path)
}

// Scatter draws points with the given marker radius in printer's points.
func Scatter(xs, ys []float64, radius float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	s, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return fmt.Errorf("viz: scatter: %w", err)
	}
	s.GlyphStyle.Color = seriesRed
	s.GlyphStyle.Radius = vg.Points(radius)
	p.Add(s)
	p.Legend.Add("points", s)

	return save(p, 4*vg.Inch, 3*vg.Inch, path)
}

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// ErrorBars draws measurements with symmetric y error bars.
func ErrorBars(xs, ys, yerr []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	data := errPoints{XYs: xyPoints(xs, ys), YErrors: make(plotter.YErrors, len(yerr))}
	for i, e := range yerr {
		data.YErrors[i].Low = e
		data.YErrors[i].High = e
	}

	s, err := plotter.NewScatter(data.XYs)
	if err != nil {
		return fmt.Errorf("viz: error bars: %w", err)
	}
	s.GlyphStyle.Color = seriesBlue
	p.Add(s)

	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return fmt.Errorf("viz: error bars: %w", err)
	}
	p.Add(bars)
	p.Legend.Add("measurement", s)

	return save(p, 4*vg.Inch, 3*vg.Inch, path)
}

// Histogram draws a density-normalized histogram with the given number of
// bins.
func Histogram(vals []float64, bins int, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("viz: histogram: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	return save(p, 5*vg.Inch, 3*vg.Inch, path)
}

// grid adapts a z = f(x, y) function over a square domain to the heat-map
// plotter.
type grid struct {
	xs, ys []float64
	f      func(x, y float64) float64
}

func (g grid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g grid) X(c int) float64    { return g.xs[c] }
func (g grid) Y(r int) float64    { return g.ys[r] }
func (g grid) Z(c, r int) float64 { return g.f(g.xs[c], g.ys[r]) }

// HeatMap draws z = f(x, y) sampled on an n x n grid over [min, max] in
// both axes.
func HeatMap(f func(x, y float64) float64, min, max float64, n int, title, path string) error {
	p := plot.New()
	p.Title.Text = title

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = min + (max-min)*float64(i)/float64(n-1)
	}
	g := grid{xs: xs, ys: xs, f: f}
	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(g, pal))

	return save(p, 5*vg.Inch, 5*vg.Inch, path)
}

func save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("viz: save %s: %w", path, err)
	}
	return nil
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("viz: write %s: %w", path, err)
	}
	return f.Close()
}
