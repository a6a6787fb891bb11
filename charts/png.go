package charts

import (
	"context"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PNG draws bar charts locally with gonum/plot.
type PNG struct {
	Width    vg.Length
	Height   vg.Length
	DPI      int
	Rotation float64 // tick label rotation, radians
}

// NewPNG returns a renderer for charts of widthIn x heightIn inches with
// x tick labels rotated by rotationDeg degrees.
func NewPNG(widthIn, heightIn float64, dpi int, rotationDeg float64) *PNG {
	return &PNG{
		Width:    vg.Length(widthIn) * vg.Inch,
		Height:   vg.Length(heightIn) * vg.Inch,
		DPI:      dpi,
		Rotation: rotationDeg * math.Pi / 180,
	}
}

func (r *PNG) Render(ctx context.Context, b Bar) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(b.Labels) != len(b.Values) {
		return "", fmt.Errorf("chart %s: %d labels for %d values", b.YLabel, len(b.Labels), len(b.Values))
	}
	if len(b.Values) == 0 {
		return "", fmt.Errorf("chart %s: no values", b.YLabel)
	}
	c, err := ParseColor(b.Color)
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", b.YLabel, err)
	}

	p := plot.New()
	p.Y.Label.Text = b.YLabel
	p.X.Label.Text = b.XLabel

	// leave room on both sides, bars take most of each slot
	slot := (r.Width - vg.Inch) / vg.Length(len(b.Values))
	bars, err := plotter.NewBarChart(plotter.Values(b.Values), slot*0.8)
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", b.YLabel, err)
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(b.Labels...)
	p.X.Tick.Label.Rotation = r.Rotation
	if r.Rotation != 0 {
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	canvas := vgimg.NewWith(vgimg.UseWH(r.Width, r.Height), vgimg.UseDPI(r.DPI))
	p.Draw(draw.New(canvas))

	f, err := os.Create(b.Path)
	if err != nil {
		return "", err
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("chart %s: write png: %w", b.YLabel, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return b.Path, nil
}
