package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/speech-analytics/speechcharts/charts"
	"github.com/speech-analytics/speechcharts/clients"
	cfg "github.com/speech-analytics/speechcharts/config"
	"github.com/speech-analytics/speechcharts/metrics"
	"github.com/speech-analytics/speechcharts/report"
)

// fallbackColor paints charts of metrics missing from the configuration,
// which only happens when replotting a saved table.
const fallbackColor = "SteelBlue"

type Pipeline struct {
	cfg      *cfg.Root
	defs     []metrics.Definition
	renderer charts.Renderer
	log      logrus.FieldLogger
}

// NewPipeline validates c and wires the providers and renderer it selects.
func NewPipeline(c *cfg.Root, log logrus.FieldLogger) (*Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	providers := metrics.Builtin()
	if s := c.Providers.Sentiment; s.Type == cfg.ProviderService {
		providers.Sentiment = metrics.ServiceSentiment{HTTP: clients.NewHTTP(s.Timeout), URL: s.URL}
	}
	if r := c.Providers.Readability; r.Type == cfg.ProviderService {
		providers.Readability = metrics.ServiceReadability{HTTP: clients.NewHTTP(r.Timeout), URL: r.URL}
	}

	defs, err := Definitions(c.Metrics, providers)
	if err != nil {
		return nil, err
	}

	var renderer charts.Renderer
	switch c.Charts.Renderer {
	case cfg.RendererService:
		renderer = &charts.Remote{HTTP: clients.NewHTTP(c.Charts.Timeout), URL: c.Charts.URL}
	default:
		renderer = charts.NewPNG(c.Charts.WidthIn, c.Charts.HeightIn, c.Charts.DPI, c.Charts.RotationDeg)
	}

	return New(c, defs, renderer, log), nil
}

// New assembles a pipeline from already resolved parts.
func New(c *cfg.Root, defs []metrics.Definition, renderer charts.Renderer, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		log = l
	}
	return &Pipeline{cfg: c, defs: defs, renderer: renderer, log: log}
}

// Definitions resolves the configured metric list, keeping its order.
func Definitions(ms []cfg.Metric, p metrics.Providers) ([]metrics.Definition, error) {
	defs := make([]metrics.Definition, 0, len(ms))
	for _, m := range ms {
		fn, err := p.Resolve(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: metric %q: %v", cfg.ErrInvalidMetric, m.Name, err)
		}
		defs = append(defs, metrics.Definition{Name: m.Name, Kind: m.Kind, Color: m.Color, Compute: fn})
	}
	return defs, nil
}

func (p *Pipeline) metricNames() []string {
	names := make([]string, len(p.defs))
	for i, d := range p.defs {
		names[i] = d.Name
	}
	return names
}

// Build parses every path, computes the metrics of each speech and returns
// the table sorted by year.
func (p *Pipeline) Build(ctx context.Context, paths []string) (*Table, error) {
	docs, err := parseAll(paths)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		p.log.WithFields(logrus.Fields{"file": d.Path, "speaker": d.FullName, "year": d.Year}).Info("speech")
	}

	rows, err := Evaluate(ctx, docs, p.defs, p.cfg.Workers)
	if err != nil {
		return nil, err
	}
	t := Assemble(p.metricNames(), rows)

	for _, r := range t.Rows {
		fields := logrus.Fields{"file": r.Path}
		for i, m := range t.Metrics {
			fields[m] = r.Values[i]
		}
		p.log.WithFields(fields).Debug("metrics")
	}
	return t, nil
}

// Render draws one chart per table metric, in column order, into the output
// directory. Existing files are overwritten.
func (p *Pipeline) Render(ctx context.Context, t *Table) ([]string, error) {
	dir := p.cfg.Output.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	colors := make(map[string]string, len(p.cfg.Metrics))
	for _, m := range p.cfg.Metrics {
		colors[m.Name] = m.Color
	}

	labels := t.Labels()
	out := make([]string, 0, len(t.Metrics))
	for _, name := range t.Metrics {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		color, ok := colors[name]
		if !ok {
			color = fallbackColor
		}
		def := metrics.Definition{Name: name}

		path, err := p.renderer.Render(ctx, charts.Bar{
			Labels: labels,
			Values: values,
			YLabel: name,
			XLabel: p.cfg.Charts.XCaption,
			Color:  color,
			Path:   filepath.Join(dir, def.FileName()),
		})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		p.log.WithField("chart", path).Info("chart written")
		out = append(out, path)
	}
	return out, nil
}

// Run is the whole pass: build the table, draw every chart, then write the
// optional table bundle and PDF report.
func (p *Pipeline) Run(ctx context.Context, paths []string) (*Result, error) {
	start := time.Now()

	t, err := p.Build(ctx, paths)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"rows": len(t.Rows), "metrics": len(t.Metrics)}).Info("table assembled")

	chartPaths, err := p.Render(ctx, t)
	if err != nil {
		return nil, err
	}

	if path := p.cfg.Output.Table; path != "" {
		runID, err := persist(path, paths, t)
		if err != nil {
			return nil, err
		}
		p.log.WithFields(logrus.Fields{"table": path, "run_id": runID}).Info("table saved")
	}

	if path := p.cfg.Output.Report; path != "" {
		if err := report.Write(path, reportDocument(t, chartPaths)); err != nil {
			return nil, err
		}
		p.log.WithField("report", path).Info("report written")
	}

	p.log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("done")
	return &Result{Table: t, Charts: chartPaths}, nil
}

func reportDocument(t *Table, chartPaths []string) report.Document {
	doc := report.Document{
		Title:   "Speech metrics",
		Columns: append([]string{"Year", "Speaker"}, t.Metrics...),
		Charts:  chartPaths,
	}
	for _, r := range t.Rows {
		cells := []string{strconv.Itoa(r.Year), r.FullName}
		for _, v := range r.Values {
			cells = append(cells, strconv.FormatFloat(v, 'f', 3, 64))
		}
		doc.Rows = append(doc.Rows, cells)
	}
	return doc
}

// Replot draws the charts of a table saved by an earlier run, without
// reading any speech.
func (p *Pipeline) Replot(ctx context.Context, bundlePath string) (*Result, error) {
	b, err := LoadBundle(bundlePath)
	if err != nil {
		return nil, err
	}
	t := Assemble(b.Metrics, b.Rows)
	for _, r := range t.Rows {
		if len(r.Values) != len(t.Metrics) {
			return nil, fmt.Errorf("%s: row %q has %d values for %d metrics", bundlePath, r.FullName, len(r.Values), len(t.Metrics))
		}
	}

	chartPaths, err := p.Render(ctx, t)
	if err != nil {
		return nil, err
	}
	return &Result{Table: t, Charts: chartPaths}, nil
}
