package datadog

import (
	"reflect"
	"testing"

	"github.com/tordrt/geoddl/internal/metrics"
)

type countCall struct {
	name  string
	value int64
	tags  []string
}

type fakeClient struct {
	calls  []countCall
	closed bool
}

func (f *fakeClient) Count(name string, value int64, tags []string, _ float64) error {
	f.calls = append(f.calls, countCall{name: name, value: value, tags: tags})
	return nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func TestNewBackendRequiresAddr(t *testing.T) {
	if _, err := NewBackend(Config{}); err == nil {
		t.Error("NewBackend() error = nil, want error for empty Addr")
	}
}

func TestIncCounterAndFlush(t *testing.T) {
	fc := &fakeClient{}
	b := &Backend{client: fc}

	b.IncCounter(metrics.StatementsTotal, 1, metrics.Labels{"verb": "create", "job": "nightly"})
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := []countCall{{name: metrics.StatementsTotal, value: 1, tags: []string{"job:nightly", "verb:create"}}}
	if !reflect.DeepEqual(fc.calls, want) {
		t.Errorf("calls = %+v, want %+v", fc.calls, want)
	}
	if !fc.closed {
		t.Error("Flush() did not close the client")
	}
}

func TestLabelsToTags(t *testing.T) {
	if got := labelsToTags(nil); got != nil {
		t.Errorf("labelsToTags(nil) = %v, want nil", got)
	}
}
