package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tordrt/geoddl/internal/ddl"
)

const (
	formatMarkdown = "markdown"
	formatText     = "text"
)

// MultiFileFormatter writes statements to one file per table plus an overview
type MultiFileFormatter struct {
	OutputDir    string
	OutputFormat string // "text" or "markdown"
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir, format string) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir:    outputDir,
		OutputFormat: format,
	}
}

// Format writes the statements to multiple files
func (f *MultiFileFormatter) Format(stmts []ddl.Statement) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	groups := groupByTable(stmts)
	if err := f.writeOverview(groups); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}

	for _, g := range groups {
		if err := f.writeTableFile(g); err != nil {
			return fmt.Errorf("failed to write table file for %s: %w", g.Table, err)
		}
	}

	return nil
}

// writeOverview lists tables alphabetically with the outcome of their CREATE
func (f *MultiFileFormatter) writeOverview(groups []tableStatements) error {
	ext := f.getFileExtension()
	filename := filepath.Join(f.OutputDir, "_overview"+ext)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	sorted := make([]tableStatements, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Table < sorted[j].Table
	})

	if f.OutputFormat == formatMarkdown {
		_, _ = fmt.Fprintf(file, "# DDL Overview\n\n")
		_, _ = fmt.Fprintf(file, "Each table has a corresponding file: `<table_name>%s`\n\n", ext)
		for _, g := range sorted {
			_, _ = fmt.Fprintf(file, "- **%s** (%s)\n", g.Table, createOutcome(g))
		}
		return nil
	}

	_, _ = fmt.Fprintf(file, "-- DDL OVERVIEW\n")
	_, _ = fmt.Fprintf(file, "-- Each table has a file: <table_name>%s\n\n", ext)
	for _, g := range sorted {
		_, _ = fmt.Fprintf(file, "-- %s (%s)\n", g.Table, createOutcome(g))
	}
	return nil
}

// writeTableFile writes a single table to its own file
func (f *MultiFileFormatter) writeTableFile(g tableStatements) error {
	filename := filepath.Join(f.OutputDir, g.Table+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == formatMarkdown {
		md := NewMarkdownFormatter(file)
		md.formatTable(file, g)
		return nil
	}
	return NewTextFormatter(file).formatTable(g)
}

func createOutcome(g tableStatements) ddl.Outcome {
	for _, st := range g.Statements {
		if st.Kind == ddl.KindCreate {
			return st.Outcome
		}
	}
	return ""
}

func (f *MultiFileFormatter) getFileExtension() string {
	if f.OutputFormat == formatMarkdown {
		return ".md"
	}
	return ".sql"
}
