package orchestrator

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Document is one speech file. It only lives until its metrics are
// computed.
type Document struct {
	Path          string
	FullName      string
	FirstName     string
	MiddleInitial string // "" when the name has none
	LastName      string
	Year          int
	Text          string // newlines replaced by spaces
}

// Label is the two-line chart axis label built from the initials, e.g.
// "BH Obama\n2009" for Barack H. Obama.
func (d Document) Label() string {
	first, _ := utf8.DecodeRuneInString(d.FirstName)
	initials := d.MiddleInitial
	if first != utf8.RuneError {
		initials = string(first) + initials
	}
	return initials + " " + d.LastName + "\n" + strconv.Itoa(d.Year)
}

// Row holds the metric values of one document, aligned with Table.Metrics.
type Row struct {
	Year     int       `json:"year" yaml:"year"`
	Label    string    `json:"label" yaml:"label"`
	FullName string    `json:"full_name" yaml:"full_name"`
	Path     string    `json:"path" yaml:"path"`
	Values   []float64 `json:"values" yaml:"values"`
}

// Table is the assembled metrics table, rows sorted by year.
type Table struct {
	Metrics []string `json:"metrics" yaml:"metrics"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Column returns the values of one metric in row order.
func (t *Table) Column(metric string) ([]float64, error) {
	idx := -1
	for i, m := range t.Metrics {
		if m == metric {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no metric %q in table", metric)
	}
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Values[idx]
	}
	return out, nil
}

func (t *Table) Labels() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Label
	}
	return out
}

func (t *Table) Years() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Year
	}
	return out
}

// Result is what a pipeline run produced.
type Result struct {
	Table  *Table
	Charts []string
}
