package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgConn is the subset of *pgx.Conn the client uses
type pgConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	connString string
	schema     string
	conn       pgConn
}

// NewPostgresClient creates a new PostgreSQL client. The connection is made by Open.
// schemaName is used when listing tables and defaults to "public".
func NewPostgresClient(connString, schemaName string) *PostgresClient {
	if schemaName == "" {
		schemaName = "public"
	}
	return &PostgresClient{connString: connString, schema: schemaName}
}

// Open connects and pings the database
func (c *PostgresClient) Open(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, c.connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.conn = conn
	return nil
}

// Exec runs a single statement
func (c *PostgresClient) Exec(ctx context.Context, stmt string) error {
	if c.conn == nil {
		return errNotOpen
	}
	if _, err := c.conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("postgres: exec: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close(ctx)
	c.conn = nil
	return err
}

// Tables lists the base tables of the configured schema
func (c *PostgresClient) Tables(ctx context.Context) ([]string, error) {
	if c.conn == nil {
		return nil, errNotOpen
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := c.conn.Query(ctx, query, c.schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}
