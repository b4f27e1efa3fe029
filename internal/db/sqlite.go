package db

import (
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	sqlClient
}

// NewSQLiteClient creates a new SQLite client for the database file at path
func NewSQLiteClient(path string) *SQLiteClient {
	return &SQLiteClient{sqlClient{
		backend: "sqlite",
		driver:  "sqlite3",
		dsn:     path,
		tablesQuery: `
			SELECT name
			FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
			ORDER BY name
		`,
	}}
}
