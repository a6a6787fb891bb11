package clients

import (
	"context"
	"fmt"
)

// --- Visualization (/generate-bar) ---
type BarChartReq struct {
	Labels     []string  `json:"labels"`
	Values     []float64 `json:"values"`
	YLabel     string    `json:"y_label"`
	XLabel     string    `json:"x_label"`
	Color      string    `json:"color"`
	OutputPath string    `json:"output_path"`
}

type BarChartResp struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func (h *HTTP) GenerateBarChart(ctx context.Context, url string, req BarChartReq) (*BarChartResp, error) {
	if len(req.Labels) != len(req.Values) {
		return nil, fmt.Errorf("viz bar: %d labels for %d values", len(req.Labels), len(req.Values))
	}
	var out BarChartResp
	if err := h.postJSON(ctx, "viz bar", url, "/generate-bar", req, &out); err != nil {
		return nil, err
	}
	if out.Path == "" {
		out.Path = req.OutputPath
	}
	return &out, nil
}
