//go:build integration
// +build integration

package integration

import (
	"io"
	"log"
	"testing"

	"github.com/tordrt/geoddl"
	"github.com/tordrt/geoddl/internal/ddl"
	"github.com/tordrt/geoddl/internal/schema"
)

// quietOptions silences statement logging and turns on verification
func quietOptions() *geoddl.Options {
	return &geoddl.Options{Logger: log.New(io.Discard, "", 0), Verify: true}
}

// plainSchema has no geometry columns, so every backend accepts it.
// Table names carry a prefix to stay clear of fixtures in shared databases.
func plainSchema() *schema.Schema {
	return &schema.Schema{Tables: []schema.Table{
		{
			Name: "geoddl_owners",
			Columns: []schema.Column{
				{Name: "id", Type: schema.Identifier{PrimaryKey: true}, NotNull: true},
				{Name: "name", Type: schema.Text{Size: 120}, NotNull: true},
				{Name: "active", Type: schema.Boolean{}},
				{Name: "since", Type: schema.Date{}},
			},
		},
		{
			Name:          "geoddl_visits",
			PurgeExisting: true,
			Columns: []schema.Column{
				{Name: "owner_id", Type: schema.Number{Size: 12}},
				{Name: "at", Type: schema.Time{}},
				{Name: "ref", Type: schema.UUID{}},
				{Name: "tags", Type: schema.Text{Size: 20}, Array: schema.Unbounded},
			},
		},
	}}
}

func tableNames(s *schema.Schema) []string {
	names := make([]string, 0, len(s.Tables))
	for _, table := range s.Tables {
		names = append(names, table.Name)
	}
	return names
}

// verifyOutcomes checks the outcome of every recorded statement
func verifyOutcomes(t *testing.T, r *geoddl.Report, want []ddl.Outcome) {
	t.Helper()

	if len(r.Statements) != len(want) {
		t.Fatalf("Expected %d statements, got %d: %+v", len(want), len(r.Statements), r.Statements)
	}
	for i, st := range r.Statements {
		if st.Outcome != want[i] {
			t.Errorf("Statement %q: expected outcome %s, got %s", st.SQL, want[i], st.Outcome)
		}
	}
}

// verifyNoneMissing checks that verification found every table
func verifyNoneMissing(t *testing.T, r *geoddl.Report) {
	t.Helper()

	if len(r.Missing) > 0 {
		t.Errorf("Expected all tables to exist, missing %v", r.Missing)
	}
}

var (
	firstRun  = []ddl.Outcome{ddl.OutcomeExecuted, ddl.OutcomeExecuted, ddl.OutcomeExecuted}
	secondRun = []ddl.Outcome{ddl.OutcomeAlreadyExists, ddl.OutcomeAlreadyExists, ddl.OutcomeExecuted}
)
