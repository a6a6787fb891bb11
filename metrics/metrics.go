// Package metrics defines the named per-document metrics charted by
// speechcharts and the providers that compute them.
package metrics

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyDocument is returned by metrics that are undefined for a text
// without any token.
var ErrEmptyDocument = errors.New("document has no words")

// ComputeFunc turns a document's text into one scalar value.
type ComputeFunc func(ctx context.Context, text string) (float64, error)

// Definition is one configured metric: its display name (also the table
// column and chart file stem), the registry kind computing it and the
// chart color.
type Definition struct {
	Name    string
	Kind    string
	Color   string
	Compute ComputeFunc
}

// FileName is the chart file written for the metric, e.g.
// "SMOG index" -> "SMOG_index.png".
func (d Definition) FileName() string {
	return strings.ReplaceAll(d.Name, " ", "_") + ".png"
}

// LexicalVariety is the type-token ratio of text as a percentage: distinct
// whitespace-separated tokens over total tokens, times 100.
func LexicalVariety(text string) (float64, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0, ErrEmptyDocument
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return float64(len(unique)) / float64(len(words)) * 100, nil
}
