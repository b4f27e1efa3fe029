package ddl

import (
	"context"
	"strings"
)

// Executor runs statements against a backend. Open is called once before the
// first statement and Close once after the last.
type Executor interface {
	Open(ctx context.Context) error
	Exec(ctx context.Context, stmt string) error
	Close(ctx context.Context) error
}

// StatementKind tells what a recorded statement does
type StatementKind string

const (
	KindCreate StatementKind = "create"
	KindPurge  StatementKind = "purge"
)

// Outcome records how a statement ended
type Outcome string

const (
	OutcomeExecuted      Outcome = "executed"
	OutcomeAlreadyExists Outcome = "already-exists"
	OutcomeFailed        Outcome = "failed"
)

// Statement is one attempted statement
type Statement struct {
	Table   string
	Kind    StatementKind
	SQL     string
	Outcome Outcome
}

// CreateTableSQL returns "CREATE TABLE <name> (<defs>)".
func CreateTableSQL(name string, defs []string) string {
	return "CREATE TABLE " + name + " (" + strings.Join(defs, ", ") + ")"
}

// PurgeSQL returns "DELETE FROM <name>".
func PurgeSQL(name string) string {
	return "DELETE FROM " + name
}

// createTable runs the CREATE TABLE for the open table and, when requested,
// the purge that follows it.
func (t *Translator) createTable(ctx context.Context, table string, defs []string, purge bool) error {
	stmt := CreateTableSQL(table, defs)
	safeTrace(t.sink, stmt)

	if err := t.exec.Exec(ctx, stmt); err != nil {
		if t.classifier.Classify(err) != BenignAlreadyExists {
			t.record(table, KindCreate, stmt, OutcomeFailed)
			return &StatementError{Table: table, Statement: stmt, Err: err}
		}
		t.record(table, KindCreate, stmt, OutcomeAlreadyExists)
		safeNote(t.sink, "table "+table+" already exists, skipping creation: "+err.Error())
	} else {
		t.record(table, KindCreate, stmt, OutcomeExecuted)
	}

	if !purge {
		return nil
	}

	del := PurgeSQL(table)
	safeTrace(t.sink, del)
	if err := t.exec.Exec(ctx, del); err != nil {
		t.record(table, KindPurge, del, OutcomeFailed)
		return &StatementError{Table: table, Statement: del, Err: err}
	}
	t.record(table, KindPurge, del, OutcomeExecuted)
	return nil
}

func (t *Translator) record(table string, kind StatementKind, stmt string, outcome Outcome) {
	t.statements = append(t.statements, Statement{Table: table, Kind: kind, SQL: stmt, Outcome: outcome})
}
