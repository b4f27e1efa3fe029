package ddl

import (
	"errors"
	"fmt"

	"github.com/tordrt/geoddl/internal/schema"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrUnsupportedGeometryKind = errors.New("unsupported geometry kind")
	ErrMultipleGeometryColumns = errors.New("multiple geometry columns")
	ErrExecutorUnavailable     = errors.New("execution capability unavailable")
	ErrStatementFailed         = errors.New("statement execution failed")
)

// UnsupportedGeometryKindError is returned for geometry subtypes the backend
// cannot represent.
type UnsupportedGeometryKindError struct {
	Table  string
	Column string
	Kind   schema.GeometryKind
}

func (e *UnsupportedGeometryKindError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("unsupported geometry kind %s", e.Kind)
	}
	return fmt.Sprintf("unsupported geometry kind %s for column %s.%s", e.Kind, e.Table, e.Column)
}

func (e *UnsupportedGeometryKindError) Is(target error) bool {
	return target == ErrUnsupportedGeometryKind
}

// MultipleGeometryColumnsError is returned when a table defines more than one
// geometry column.
type MultipleGeometryColumnsError struct {
	Table string
	Count int
}

func (e *MultipleGeometryColumnsError) Error() string {
	return fmt.Sprintf("table %s has %d geometry columns, the backend supports only one", e.Table, e.Count)
}

func (e *MultipleGeometryColumnsError) Is(target error) bool {
	return target == ErrMultipleGeometryColumns
}

// ExecutorUnavailableError is returned when the session cannot open its executor.
type ExecutorUnavailableError struct {
	Err error
}

func (e *ExecutorUnavailableError) Error() string {
	return fmt.Sprintf("failed to open executor: %v", e.Err)
}

func (e *ExecutorUnavailableError) Unwrap() error { return e.Err }

func (e *ExecutorUnavailableError) Is(target error) bool {
	return target == ErrExecutorUnavailable
}

// StatementError carries the statement that failed and the backend cause.
type StatementError struct {
	Table     string
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("table %s: failed to execute %q: %v", e.Table, e.Statement, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

func (e *StatementError) Is(target error) bool {
	return target == ErrStatementFailed
}
