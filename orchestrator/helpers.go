package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/speech-analytics/speechcharts/metrics"
)

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ")

// normalizeText replaces every line break with a single space.
func normalizeText(s string) string {
	return newlines.Replace(s)
}

// parseAll parses every path before anything is read, so a bad name aborts
// the run without side effects.
func parseAll(paths []string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		d, err := ParseFilename(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func loadText(d *Document) error {
	b, err := os.ReadFile(d.Path)
	if err != nil {
		return fmt.Errorf("read speech: %w", err)
	}
	d.Text = normalizeText(string(b))
	return nil
}

// evaluate computes every definition for d, in definition order.
func evaluate(ctx context.Context, d Document, defs []metrics.Definition) (Row, error) {
	row := Row{
		Year:     d.Year,
		Label:    d.Label(),
		FullName: d.FullName,
		Path:     d.Path,
		Values:   make([]float64, len(defs)),
	}
	for i, def := range defs {
		v, err := def.Compute(ctx, d.Text)
		if errors.Is(err, metrics.ErrEmptyDocument) {
			return Row{}, &EmptyDocumentError{Path: d.Path, Metric: def.Name}
		}
		if err != nil {
			return Row{}, &MetricError{Path: d.Path, Metric: def.Name, Err: err}
		}
		row.Values[i] = v
	}
	return row, nil
}

// Evaluate loads each document and computes its metrics, with at most
// workers documents in flight. Rows come back in input order whatever the
// schedule. The first error cancels the remaining work.
func Evaluate(ctx context.Context, docs []Document, defs []metrics.Definition, workers int) ([]Row, error) {
	rows := make([]Row, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i := range docs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d := docs[i]
			if err := loadText(&d); err != nil {
				return err
			}
			row, err := evaluate(ctx, d, defs)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
