package db

import (
	"errors"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// AlreadyExistsCodes are the status codes, as returned by StatusCode, that
// mean the object being created exists already.
var AlreadyExistsCodes = []string{
	"postgres:42P07", // duplicate_table
	"postgres:42710", // duplicate_object
	"mysql:1050",     // ER_TABLE_EXISTS_ERROR
	"mssql:2714",     // there is already an object named ...
}

// mssqlError matches go-mssqldb errors without depending on their concrete type
type mssqlError interface {
	SQLErrorNumber() int32
}

// StatusCode extracts a backend-qualified status code from a driver error,
// e.g. "postgres:42P07" or "mysql:1050". It returns "" when err carries none.
func StatusCode(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "postgres:" + pgErr.Code
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return "mysql:" + strconv.Itoa(int(myErr.Number))
	}

	var msErr mssqlError
	if errors.As(err, &msErr) {
		return "mssql:" + strconv.Itoa(int(msErr.SQLErrorNumber()))
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return "sqlite:" + strconv.Itoa(int(liteErr.Code))
	}

	return ""
}
