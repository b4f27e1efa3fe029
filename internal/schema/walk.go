package schema

import (
	"context"
	"errors"
	"fmt"
)

// Pass identifies one traversal of the schema
type Pass int

const (
	// PassStructure defines tables and their columns
	PassStructure Pass = iota + 1
	// PassConstraints is for cross-table concerns such as indexes and relations
	PassConstraints
)

func (p Pass) String() string {
	switch p {
	case PassStructure:
		return "structure"
	case PassConstraints:
		return "constraints"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// Visitor receives the traversal events produced by Walk
type Visitor interface {
	Begin(ctx context.Context) error
	OpenTable(ctx context.Context, pass Pass, t *Table) error
	VisitColumn(ctx context.Context, pass Pass, t *Table, c *Column) error
	CloseTable(ctx context.Context, pass Pass, t *Table) error
	End(ctx context.Context) error
}

// Walk drives v over s: Begin, then for each pass every table in order
// (open, columns, close), then End.
//
// The first error stops the traversal. End is called whenever Begin succeeded,
// and its error is joined with the traversal error.
func Walk(ctx context.Context, s *Schema, v Visitor) error {
	if err := v.Begin(ctx); err != nil {
		return err
	}

	err := walkPasses(ctx, s, v)
	if endErr := v.End(ctx); endErr != nil {
		return errors.Join(err, endErr)
	}
	return err
}

func walkPasses(ctx context.Context, s *Schema, v Visitor) error {
	for _, pass := range []Pass{PassStructure, PassConstraints} {
		for i := range s.Tables {
			if err := walkTable(ctx, pass, &s.Tables[i], v); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkTable(ctx context.Context, pass Pass, t *Table, v Visitor) error {
	if err := v.OpenTable(ctx, pass, t); err != nil {
		return err
	}
	for i := range t.Columns {
		if err := v.VisitColumn(ctx, pass, t, &t.Columns[i]); err != nil {
			return err
		}
	}
	return v.CloseTable(ctx, pass, t)
}
