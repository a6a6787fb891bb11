// Package charts draws one bar chart per metric column.
package charts

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/speech-analytics/speechcharts/clients"
)

// Bar is a single bar chart: one bar per label, in order.
type Bar struct {
	Labels []string
	Values []float64
	YLabel string
	XLabel string
	Color  string
	Path   string
}

// Renderer writes a chart to Bar.Path and returns the path written.
type Renderer interface {
	Render(ctx context.Context, b Bar) (string, error)
}

// ParseColor accepts a CSS color name in any case ("IndianRed") or a
// "#rrggbb" hex triplet.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Remote delegates drawing to a chart service.
type Remote struct {
	HTTP *clients.HTTP
	URL  string
}

func (r *Remote) Render(ctx context.Context, b Bar) (string, error) {
	resp, err := r.HTTP.GenerateBarChart(ctx, r.URL, clients.BarChartReq{
		Labels:     b.Labels,
		Values:     b.Values,
		YLabel:     b.YLabel,
		XLabel:     b.XLabel,
		Color:      b.Color,
		OutputPath: b.Path,
	})
	if err != nil {
		return "", err
	}
	return resp.Path, nil
}
