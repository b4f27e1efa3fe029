package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/geoddl/internal/ddl"
)

// TextFormatter writes statements as a plain SQL script
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes one block per table, each statement terminated by a semicolon
func (f *TextFormatter) Format(stmts []ddl.Statement) error {
	for i, g := range groupByTable(stmts) {
		if i > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil { // Blank line between tables
				return err
			}
		}
		if err := f.formatTable(g); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatTable(g tableStatements) error {
	if _, err := fmt.Fprintf(f.writer, "-- %s\n", g.Table); err != nil {
		return err
	}
	for _, st := range g.Statements {
		if st.Outcome != "" && st.Outcome != ddl.OutcomeExecuted {
			if _, err := fmt.Fprintf(f.writer, "-- %s\n", st.Outcome); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(f.writer, "%s;\n", st.SQL); err != nil {
			return err
		}
	}
	return nil
}
