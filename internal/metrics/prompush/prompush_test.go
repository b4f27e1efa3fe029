package prompush

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/tordrt/geoddl/internal/metrics"
)

// readCounterValue reads the current value of a Counter for assertions in tests.
func readCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Counter.Write() error = %v", err)
	}
	if m.GetCounter() == nil {
		t.Fatalf("metric did not contain Counter value")
	}
	return m.GetCounter().GetValue()
}

func TestNewBackend(t *testing.T) {
	t.Parallel()

	if _, err := NewBackend("job", ""); err == nil {
		t.Error("NewBackend() with empty URL error = nil, want error")
	}

	b, err := NewBackend("", "http://gateway:9091")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if b.jobName != "geoddl" {
		t.Errorf("jobName = %q, want geoddl", b.jobName)
	}
}

func TestIncCounter(t *testing.T) {
	t.Parallel()

	b, err := NewBackend("job", "http://gateway:9091")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}

	b.IncCounter(metrics.StatementsTotal, 1, metrics.Labels{"verb": "create"})
	b.IncCounter(metrics.StatementsTotal, 2, metrics.Labels{"verb": "create"})
	b.IncCounter(metrics.NotesTotal, 1, nil)
	b.IncCounter("something_else", 5, nil)

	if got := readCounterValue(t, b.statementCounter.WithLabelValues("create")); got != 3 {
		t.Errorf("create statements = %v, want 3", got)
	}
	if got := readCounterValue(t, b.noteCounter); got != 1 {
		t.Errorf("notes = %v, want 1", got)
	}
}

func TestFlushPushesToGateway(t *testing.T) {
	t.Parallel()

	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b, err := NewBackend("nightly", srv.URL)
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	b.IncCounter(metrics.StatementsTotal, 1, metrics.Labels{"verb": "create"})

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if !strings.Contains(gotPath, "/metrics/job/nightly") {
		t.Errorf("push path = %q, want job nightly", gotPath)
	}
	if gotBody == "" {
		t.Error("push body is empty")
	}
}
