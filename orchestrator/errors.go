package orchestrator

import (
	"fmt"

	"github.com/speech-analytics/speechcharts/metrics"
)

// ParseError reports a speech path that does not encode speaker and year.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse file name: %s", e.Path, e.Reason)
}

// EmptyDocumentError reports a document without any word for a metric that
// needs at least one.
type EmptyDocumentError struct {
	Path   string
	Metric string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s: %s: document is empty", e.Path, e.Metric)
}

func (e *EmptyDocumentError) Unwrap() error { return metrics.ErrEmptyDocument }

// MetricError wraps any failure computing one metric of one document.
type MetricError struct {
	Path   string
	Metric string
	Err    error
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Metric, e.Err)
}

func (e *MetricError) Unwrap() error { return e.Err }
