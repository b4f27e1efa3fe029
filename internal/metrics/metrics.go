// Package metrics counts what a translation session did and forwards the
// counts to a pluggable backend such as a Prometheus Pushgateway or DogStatsD.
package metrics

import "strings"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Metric names emitted by Sink.
const (
	StatementsTotal = "geoddl_statements_total"
	NotesTotal      = "geoddl_notes_total"
)

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

// NopBackend discards everything.
type NopBackend struct{}

func (NopBackend) IncCounter(string, float64, Labels) {}
func (NopBackend) Flush() error                       { return nil }

// Sink is a ddl sink that counts traced statements by verb and diagnostic notes.
type Sink struct {
	Backend Backend
	Job     string
}

// NewSink returns a Sink for job. A nil backend is replaced by NopBackend.
func NewSink(job string, b Backend) *Sink {
	if b == nil {
		b = NopBackend{}
	}
	return &Sink{Backend: b, Job: job}
}

// Trace counts one statement, labelled with its leading keyword.
func (s *Sink) Trace(stmt string) {
	s.Backend.IncCounter(StatementsTotal, 1, Labels{"job": s.Job, "verb": verb(stmt)})
}

// Note counts one diagnostic note.
func (s *Sink) Note(string) {
	s.Backend.IncCounter(NotesTotal, 1, Labels{"job": s.Job})
}

// Flush delegates to the backend.
func (s *Sink) Flush() error {
	return s.Backend.Flush()
}

func verb(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

// Multi fans out to several backends. Flush returns the first error.
type Multi []Backend

func (m Multi) IncCounter(name string, delta float64, labels Labels) {
	for _, b := range m {
		b.IncCounter(name, delta, labels)
	}
}

func (m Multi) Flush() error {
	var first error
	for _, b := range m {
		if err := b.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
