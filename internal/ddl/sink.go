package ddl

import "log"

// Sink observes translation. Trace receives every statement before it is
// executed; Note receives diagnostics such as tolerated already-exists errors.
type Sink interface {
	Trace(stmt string)
	Note(msg string)
}

// LogSink writes to a *log.Logger, or the standard logger when nil.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Trace(stmt string) { s.printf("ddl: %s", stmt) }

func (s LogSink) Note(msg string) { s.printf("ddl: note: %s", msg) }

func (s LogSink) printf(format string, args ...any) {
	if s.Logger == nil {
		log.Printf(format, args...)
		return
	}
	s.Logger.Printf(format, args...)
}

// MultiSink fans out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Trace(stmt string) {
	for _, s := range m {
		safeTrace(s, stmt)
	}
}

func (m MultiSink) Note(msg string) {
	for _, s := range m {
		safeNote(s, msg)
	}
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Trace(string) {}
func (NopSink) Note(string)  {}

// safeTrace and safeNote keep a misbehaving sink from affecting the session.
func safeTrace(s Sink, stmt string) {
	defer func() { _ = recover() }()
	s.Trace(stmt)
}

func safeNote(s Sink, msg string) {
	defer func() { _ = recover() }()
	s.Note(msg)
}
