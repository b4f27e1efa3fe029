package db

import (
	_ "github.com/go-sql-driver/mysql"
)

// MySQLClient manages the connection to MySQL
type MySQLClient struct {
	sqlClient
}

// NewMySQLClient creates a new MySQL client. connString uses the driver's DSN
// format, e.g. user:pass@tcp(localhost:3306)/db.
func NewMySQLClient(connString string) *MySQLClient {
	return &MySQLClient{sqlClient{
		backend: "mysql",
		driver:  "mysql",
		dsn:     connString,
		tablesQuery: `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
			ORDER BY table_name
		`,
	}}
}
