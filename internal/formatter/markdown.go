package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/geoddl/internal/ddl"
)

// MarkdownFormatter formats statements as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes a heading per table followed by its statements
func (f *MarkdownFormatter) Format(stmts []ddl.Statement) error {
	_, _ = fmt.Fprintln(f.writer, "# Schema DDL")
	_, _ = fmt.Fprintln(f.writer)

	for _, g := range groupByTable(stmts) {
		f.formatTable(f.writer, g)
	}
	return nil
}

func (f *MarkdownFormatter) formatTable(w io.Writer, g tableStatements) {
	_, _ = fmt.Fprintf(w, "## %s\n\n", g.Table)
	f.formatStatements(w, g.Statements)
}

// formatStatements writes the fenced SQL block and the outcome list
func (f *MarkdownFormatter) formatStatements(w io.Writer, stmts []ddl.Statement) {
	_, _ = fmt.Fprintln(w, "```sql")
	for _, st := range stmts {
		_, _ = fmt.Fprintf(w, "%s;\n", st.SQL)
	}
	_, _ = fmt.Fprintln(w, "```")
	_, _ = fmt.Fprintln(w)

	for _, st := range stmts {
		if st.Outcome == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "- **%s:** %s\n", st.Kind, st.Outcome)
	}
	_, _ = fmt.Fprintln(w)
}
