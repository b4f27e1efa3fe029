package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tordrt/geoddl"
	"github.com/tordrt/geoddl/internal/config"
	"github.com/tordrt/geoddl/internal/ddl"
	"github.com/tordrt/geoddl/internal/metrics"
	"github.com/tordrt/geoddl/internal/metrics/datadog"
	"github.com/tordrt/geoddl/internal/metrics/prompush"
	"github.com/tordrt/geoddl/internal/schema"
)

var (
	schemaFile string
	dbURL      string
	mysqlURL   string
	sqlitePath string
	mssqlURL   string
	dryRun     bool
	outputFile string
	outputDir  string
	tables     string
	exclude    string
	pgSchema   string
	format     string
	verify     bool
	envFile    string
	pushURL    string
	statsdAddr string
)

var rootCmd = &cobra.Command{
	Use:   "geoddl",
	Short: "Create database tables from a geometry-aware schema",
	Long:  `GeoDDL reads a YAML table schema, translates it to CREATE TABLE statements with GEOMETRY columns, and applies them to PostgreSQL, MySQL, SQLite, or SQL Server. Tables that already exist are left alone.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&schemaFile, "schema", "", "YAML schema file (env GEODDL_SCHEMA)")
	rootCmd.Flags().StringVar(&dbURL, "db-url", "", "Database URL, PostgreSQL by default (env GEODDL_DATABASE_URL)")
	rootCmd.Flags().StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	rootCmd.Flags().StringVar(&mssqlURL, "mssql-url", "", "SQL Server connection URL (sqlserver://...)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without connecting to a database")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the statement report to a file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Write the statement report to one file per table")
	rootCmd.Flags().StringVarP(&tables, "tables", "t", "", "Specific tables (comma-separated, optional)")
	rootCmd.Flags().StringVar(&exclude, "exclude", "", "Tables to skip (comma-separated, optional)")
	rootCmd.Flags().StringVarP(&pgSchema, "pg-schema", "s", "public", "PostgreSQL schema used by --verify")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text or markdown (default: text)")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Check that every table exists after applying")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	rootCmd.Flags().StringVar(&pushURL, "push-url", "", "Prometheus Pushgateway URL (env GEODDL_PUSHGATEWAY_URL)")
	rootCmd.Flags().StringVar(&statsdAddr, "statsd-addr", "", "DogStatsD address (env GEODDL_DOGSTATSD_ADDR)")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if schemaFile == "" {
		schemaFile = cfg.SchemaFile
	}
	if schemaFile == "" {
		return fmt.Errorf("--schema must be specified")
	}
	if outputDir != "" && outputFile != "" {
		return fmt.Errorf("cannot use both --output-dir and --output flags")
	}
	if format != "text" && format != "markdown" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}

	databaseURL, err := resolveDatabaseURL(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	s, err := schema.Load(schemaFile)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	backend, err := newMetricsBackend(cfg)
	if err != nil {
		return err
	}
	metricsSink := metrics.NewSink(cfg.Job, backend)
	defer func() {
		if err := metricsSink.Flush(); err != nil {
			logger.Printf("warning: failed to flush metrics: %v", err)
		}
	}()

	opts := &geoddl.Options{
		Tables:        parseTableList(tables),
		ExcludeTables: parseTableList(exclude),
		SchemaName:    pgSchema,
		Sink:          ddl.MultiSink{ddl.LogSink{Logger: logger}, metricsSink},
		Verify:        verify,
	}

	outOpts := &geoddl.OutputOptions{OutputDir: outputDir, Format: format}
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
			}
		}()
		outOpts.Writer = f
	}

	// Dry run
	if dryRun {
		if outOpts.Writer == nil && outOpts.OutputDir == "" {
			outOpts.Writer = os.Stdout
		}
		if _, err := geoddl.Render(ctx, s, opts, outOpts); err != nil {
			return fmt.Errorf("failed to render schema: %w", err)
		}
		return nil
	}

	report, err := geoddl.Apply(ctx, databaseURL, s, opts)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if outOpts.Writer != nil || outOpts.OutputDir != "" {
		if err := geoddl.FormatReport(report, outOpts); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	if len(report.Missing) > 0 {
		return fmt.Errorf("tables missing after apply: %s", strings.Join(report.Missing, ", "))
	}
	return nil
}

// resolveDatabaseURL turns the database flags into a URL understood by
// geoddl.Apply. fallback is used when no flag is set. Dry runs need none.
func resolveDatabaseURL(fallback string) (string, error) {
	var urls []string
	if dbURL != "" {
		urls = append(urls, dbURL)
	}
	if mysqlURL != "" {
		urls = append(urls, "mysql://"+strings.TrimPrefix(mysqlURL, "mysql://"))
	}
	if sqlitePath != "" {
		urls = append(urls, "sqlite://"+strings.TrimPrefix(sqlitePath, "sqlite://"))
	}
	if mssqlURL != "" {
		urls = append(urls, mssqlURL)
	}

	if len(urls) > 1 {
		return "", fmt.Errorf("only one of --db-url, --mysql-url, --sqlite, or --mssql-url can be specified")
	}
	if len(urls) == 1 {
		if dryRun {
			return "", fmt.Errorf("--dry-run cannot be combined with a database flag")
		}
		return urls[0], nil
	}
	if dryRun {
		return "", nil
	}
	if fallback == "" {
		return "", fmt.Errorf("one of --db-url, --mysql-url, --sqlite, --mssql-url, or --dry-run must be specified")
	}
	return fallback, nil
}

// newMetricsBackend builds the configured metrics backends. Flags override
// the environment.
func newMetricsBackend(cfg *config.Config) (metrics.Backend, error) {
	gateway := pushURL
	if gateway == "" {
		gateway = cfg.PushgatewayURL
	}
	statsd := statsdAddr
	if statsd == "" {
		statsd = cfg.DogStatsDAddr
	}

	var backends metrics.Multi
	if gateway != "" {
		b, err := prompush.NewBackend(cfg.Job, gateway)
		if err != nil {
			return nil, err
		}
		backends = append(backends, b)
	}
	if statsd != "" {
		b, err := datadog.NewBackend(datadog.Config{Addr: statsd})
		if err != nil {
			return nil, err
		}
		backends = append(backends, b)
	}

	if len(backends) == 0 {
		return metrics.NopBackend{}, nil
	}
	return backends, nil
}

func parseTableList(list string) []string {
	if list == "" {
		return nil
	}
	names := strings.Split(list, ",")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}
	return names
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
