package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var errNotOpen = errors.New("connection is not open")

// sqlClient runs statements over database/sql. Backends differ only in
// driver name and the query that lists tables.
type sqlClient struct {
	backend     string
	driver      string
	dsn         string
	tablesQuery string
	db          *sql.DB
}

// Open opens the database and pings it
func (c *sqlClient) Open(ctx context.Context) error {
	db, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.db = db
	return nil
}

// Exec runs a single statement
func (c *sqlClient) Exec(ctx context.Context, stmt string) error {
	if c.db == nil {
		return errNotOpen
	}
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%s: exec: %w", c.backend, err)
	}
	return nil
}

// Close closes the database connection
func (c *sqlClient) Close(context.Context) error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Tables lists user tables
func (c *sqlClient) Tables(ctx context.Context) ([]string, error) {
	if c.db == nil {
		return nil, errNotOpen
	}

	rows, err := c.db.QueryContext(ctx, c.tablesQuery)
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

// DB returns the underlying database handle, nil before Open
func (c *sqlClient) DB() *sql.DB {
	return c.db
}
