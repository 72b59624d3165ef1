package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PNG draws ch as a 12x7in bar chart. Marked and unmarked bars are two
// overlaid series so each gets its own colour.
func PNG(w io.Writer, ch ScoreChart) error {
	if len(ch.Values) == 0 {
		return fmt.Errorf("render: chart %q has no bars", ch.Title)
	}
	base := make(plotter.Values, len(ch.Values))
	marked := make(plotter.Values, len(ch.Values))
	for i, v := range ch.Values {
		if ch.Marked[i] {
			marked[i] = v
		} else {
			base[i] = v
		}
	}

	p := plot.New()
	p.Title.Text = ch.Title
	p.X.Label.Text = "Campaign ID"
	p.Y.Label.Text = ch.YLabel
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	width := vg.Points(18)
	for _, s := range []struct {
		vals plotter.Values
		col  string
	}{{base, colorBase}, {marked, ch.Highlight}} {
		bars, err := plotter.NewBarChart(s.vals, width)
		if err != nil {
			return fmt.Errorf("render: bars: %w", err)
		}
		bars.Color = hexColor(s.col)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(ch.Labels...)

	wt, err := p.WriterTo(12*vg.Inch, 7*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
