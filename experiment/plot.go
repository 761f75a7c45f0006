package experiment

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotFloor is the smallest y the chart will place. Log axes reject
// values <= 0, and sub-nanosecond means are timer noise, so both the
// series and the error-bar lows are clamped to this floor.
const plotFloor = 1e-9

// errPoints bundles a series' points with their vertical error spans,
// satisfying both interfaces plotter.NewYErrorBars wants.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// powerOfTwoTicks labels an axis at powers of two rendered as plain
// integers (128, 256, 512, ...), the natural ticks for a sweep that
// doubles n at every step.
type powerOfTwoTicks struct{}

// Ticks returns one labeled tick per power of two inside [min, max].
func (powerOfTwoTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := 1.0; v <= max; v *= 2 {
		if v < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}

	return ticks
}

// writePlot renders the comparison chart: one line+points series with
// ±1 stdev error bars per algorithm, x log-scaled with power-of-two
// ticks, y log-scaled, legend in registry order.
func writePlot(path string, measurements []Measurement) error {
	p := plot.New()
	p.Title.Text = "Sorting algorithms: execution time vs input size"
	p.X.Label.Text = "Input size (n)"
	p.Y.Label.Text = "Time (seconds)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = powerOfTwoTicks{}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, algo := range Algorithms() {
		pts := seriesFor(measurements, algo.Name)
		if len(pts.XYs) == 0 {
			// Quadratic algorithms contribute nothing above the cap;
			// a sweep of only large sizes leaves their series empty.
			continue
		}

		line, points, err := plotter.NewLinePoints(pts.XYs)
		if err != nil {
			return fmt.Errorf("experiment: build series %s: %w", algo.Name, err)
		}
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return fmt.Errorf("experiment: build error bars %s: %w", algo.Name, err)
		}

		clr := plotutil.Color(i)
		line.Color = clr
		points.Color = clr
		points.Shape = plotutil.Shape(i)
		bars.LineStyle.Color = clr

		p.Add(line, points, bars)
		p.Legend.Add(algo.Name, line, points)
	}

	// A single-size sweep (or identical means) collapses an axis range,
	// which a log scale cannot normalize; pad it back open.
	if p.X.Min == p.X.Max {
		p.X.Min /= 2
		p.X.Max *= 2
	}
	if p.Y.Min == p.Y.Max {
		p.Y.Min /= 2
		p.Y.Max *= 2
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("experiment: save %s: %w", path, err)
	}

	return nil
}

// seriesFor extracts one algorithm's (n, avg, stdev) triples in
// measurement order, clamped so every drawn coordinate stays strictly
// positive on the log scale.
func seriesFor(measurements []Measurement, name string) errPoints {
	var pts errPoints
	for _, m := range measurements {
		if m.Algorithm != name {
			continue
		}

		avg := m.AvgSeconds
		if avg < plotFloor {
			avg = plotFloor
		}

		// The bar spans [avg-low, avg+high]; keep the low end above zero.
		low := m.StdevSeconds
		if avg-low < plotFloor {
			low = avg - plotFloor
		}
		if low < 0 {
			low = 0
		}

		pts.XYs = append(pts.XYs, plotter.XY{X: float64(m.N), Y: avg})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{Low: low, High: m.StdevSeconds})
	}

	return pts
}
