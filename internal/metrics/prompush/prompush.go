// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package. geoddl runs as a short-lived command, so counts are pushed
// at the end of a run instead of being scraped.
package prompush

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/tordrt/geoddl/internal/metrics"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	statementCounter *prometheus.CounterVec // geoddl_statements_total
	noteCounter      prometheus.Counter     // geoddl_notes_total
}

// NewBackend constructs a Prometheus Pushgateway backend.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "geoddl"
	}

	reg := prometheus.NewRegistry()

	statementCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metrics.StatementsTotal,
			Help: "Statements attempted, partitioned by leading keyword.",
		},
		[]string{"verb"},
	)
	noteCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: metrics.NotesTotal,
			Help: "Diagnostic notes, such as tables that already existed.",
		},
	)

	if err := reg.Register(statementCounter); err != nil {
		return nil, fmt.Errorf("prompush: register statement counter: %w", err)
	}
	if err := reg.Register(noteCounter); err != nil {
		return nil, fmt.Errorf("prompush: register note counter: %w", err)
	}

	return &Backend{
		gatewayURL:       gatewayURL,
		jobName:          jobName,
		reg:              reg,
		statementCounter: statementCounter,
		noteCounter:      noteCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case metrics.StatementsTotal:
		b.statementCounter.WithLabelValues(labels["verb"]).Add(delta)
	case metrics.NotesTotal:
		b.noteCounter.Add(delta)
	default:
		// unknown metric name: ignore
	}
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
