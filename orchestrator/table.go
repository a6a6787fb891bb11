package orchestrator

import "sort"

// Assemble builds the metrics table from rows in input order, sorted by
// year. Rows of the same year keep their input order, and duplicates are
// kept.
func Assemble(metricNames []string, rows []Row) *Table {
	t := &Table{
		Metrics: append([]string(nil), metricNames...),
		Rows:    append([]Row(nil), rows...),
	}
	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].Year < t.Rows[j].Year })
	return t
}
