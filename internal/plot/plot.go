package plot

import (
	"bytes"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Curve is the slice of a gradation curve the renderer needs.
type Curve interface {
	Name() string
	PercentPassingAt(size float64) float64
	KnownPoints() (sizes, percents []float64)
}

type Options struct {
	Width    int
	Height   int
	UseColor bool
	Samples  int
}

// RenderError reports a plot that cannot be drawn at all.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "render: " + e.Reason
}

// Palettes indexed by curve order, so identical requests draw identically.
var colorPalette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

var grayPalette = []drawing.Color{
	drawing.ColorFromHex("000000"),
	drawing.ColorFromHex("404040"),
	drawing.ColorFromHex("808080"),
	drawing.ColorFromHex("b0b0b0"),
}

// Render draws every curve over a shared logarithmic size axis spanning
// [minSize, maxSize] and encodes the chart as PNG.
func Render(curves []Curve, minSize, maxSize float64, opts Options) ([]byte, error) {
	if len(curves) == 0 {
		return nil, &RenderError{Reason: "no curves to draw"}
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Samples < 2 {
		opts.Samples = 200
	}
	palette := colorPalette
	if !opts.UseColor {
		palette = grayPalette
	}

	xs := logSpace(minSize, maxSize, opts.Samples)
	series := make([]chart.Series, 0, 2*len(curves))
	for i, c := range curves {
		col := palette[i%len(palette)]
		ys := make([]float64, len(xs))
		for j, x := range xs {
			ys[j] = c.PercentPassingAt(x)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name(),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 2},
		})
		px, py := c.KnownPoints()
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name() + " (measured)",
			XValues: px,
			YValues: py,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotColor: col, DotWidth: 4},
		})
	}

	ch := chart.Chart{
		Title:  "Particle Size Distribution",
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Particle Size (mm)",
			Range: &chart.LogarithmicRange{Min: minSize, Max: maxSize},
		},
		YAxis: chart.YAxis{
			Name:  "Percent Passing (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			Ticks: percentTicks(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, &RenderError{Reason: err.Error()}
	}
	return buf.Bytes(), nil
}

func logSpace(min, max float64, n int) []float64 {
	lo := math.Log10(min)
	hi := math.Log10(max)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(n-1))
	}
	return out
}

func percentTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 6)
	for v := 0; v <= 100; v += 20 {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}
