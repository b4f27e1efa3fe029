package ddl

import (
	"context"
	"errors"
	"fmt"

	"github.com/tordrt/geoddl/internal/schema"
)

type state int

const (
	stateIdle state = iota
	stateTableOpen
)

// Translator receives schema traversal events, renders one CREATE TABLE per
// table and applies it through an Executor. It implements schema.Visitor and
// is meant for a single session at a time.
//
// Only the structure pass does work. Constraint-pass events are accepted and
// ignored. A column visit or table close while no table is open is ignored as
// well, so callers with sloppy event ordering do not break a session.
type Translator struct {
	exec       Executor
	sink       Sink
	classifier *Classifier

	state      state
	table      *schema.Table
	defs       []string
	geometries int

	statements []Statement
}

// Option configures a Translator
type Option func(*Translator)

// WithSink sets the observability sink. The default is LogSink on the
// standard logger.
func WithSink(s Sink) Option {
	return func(t *Translator) {
		if s != nil {
			t.sink = s
		}
	}
}

// WithClassifier sets the already-exists classifier. The default matches
// DefaultPhrases only.
func WithClassifier(c *Classifier) Option {
	return func(t *Translator) {
		if c != nil {
			t.classifier = c
		}
	}
}

// NewTranslator creates a translator that executes through exec.
func NewTranslator(exec Executor, opts ...Option) *Translator {
	t := &Translator{
		exec:       exec,
		sink:       LogSink{},
		classifier: NewClassifier(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Statements returns every statement attempted so far, in order.
func (t *Translator) Statements() []Statement {
	return append([]Statement(nil), t.statements...)
}

// Begin opens the executor. Nothing runs if this fails.
func (t *Translator) Begin(ctx context.Context) error {
	t.reset()
	t.statements = nil
	if err := t.exec.Open(ctx); err != nil {
		return &ExecutorUnavailableError{Err: err}
	}
	return nil
}

// End releases the executor. Statements already executed stay in effect.
func (t *Translator) End(ctx context.Context) error {
	t.reset()
	if err := t.exec.Close(ctx); err != nil {
		return fmt.Errorf("failed to close executor: %w", err)
	}
	return nil
}

// OpenTable starts collecting column definitions for tbl. Opening a table
// while another is open discards the unfinished one.
func (t *Translator) OpenTable(_ context.Context, pass schema.Pass, tbl *schema.Table) error {
	if pass != schema.PassStructure {
		return nil
	}
	t.reset()
	t.state = stateTableOpen
	t.table = tbl
	return nil
}

// VisitColumn renders the column definition for the open table.
func (t *Translator) VisitColumn(_ context.Context, pass schema.Pass, _ *schema.Table, col *schema.Column) error {
	if pass != schema.PassStructure || t.state != stateTableOpen {
		return nil
	}

	def, fallback, err := columnDefinition(*col)
	if err != nil {
		var ge *UnsupportedGeometryKindError
		if errors.As(err, &ge) {
			ge.Table, ge.Column = t.table.Name, col.Name
		}
		return err
	}
	if fallback {
		safeNote(t.sink, fmt.Sprintf("column %s.%s has unmodeled kind %s, using %s",
			t.table.Name, col.Name, kindName(col.Type), varchar(fallbackTextSize)))
	}
	if isGeometryColumn(*col) {
		t.geometries++
	}

	t.defs = append(t.defs, def)
	return nil
}

// CloseTable checks the geometry column limit and creates the table.
func (t *Translator) CloseTable(ctx context.Context, pass schema.Pass, _ *schema.Table) error {
	if pass != schema.PassStructure || t.state != stateTableOpen {
		return nil
	}

	tbl, defs, geometries := t.table, t.defs, t.geometries
	t.reset()

	if geometries > 1 {
		return &MultipleGeometryColumnsError{Table: tbl.Name, Count: geometries}
	}
	return t.createTable(ctx, tbl.Name, defs, tbl.PurgeExisting)
}

func (t *Translator) reset() {
	t.state = stateIdle
	t.table = nil
	t.defs = nil
	t.geometries = 0
}
