package db

import (
	_ "github.com/microsoft/go-mssqldb"
)

// MSSQLClient manages the connection to SQL Server
type MSSQLClient struct {
	sqlClient
}

// NewMSSQLClient creates a new SQL Server client from a sqlserver:// URL
func NewMSSQLClient(connString string) *MSSQLClient {
	return &MSSQLClient{sqlClient{
		backend:     "mssql",
		driver:      "sqlserver",
		dsn:         connString,
		tablesQuery: `SELECT name FROM sys.tables ORDER BY name`,
	}}
}
