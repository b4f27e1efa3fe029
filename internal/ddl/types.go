// Package ddl translates abstract schema tables into CREATE TABLE statements
// for a backend with a narrow type vocabulary and applies them through an
// Executor.
//
// The backend has no boolean, date-only, fixed-decimal or array column types.
// Those kinds are widened onto SMALLINT, TIMESTAMP, DOUBLE and encoded text
// respectively, and every table may hold at most one geometry column.
package ddl

import (
	"fmt"
	"strings"

	"github.com/tordrt/geoddl/internal/schema"
)

const (
	// arrayTextSize bounds the encoded form of array-valued columns.
	arrayTextSize = 4096
	// longTextSize is used for unsized text and XML.
	longTextSize = 4096
	// fallbackTextSize is used for kinds the mapper does not model.
	fallbackTextSize = 1024
	// uuidTextSize is the canonical textual UUID length.
	uuidTextSize = 36
	// bigNumberDigits is the largest digit count that still fits INTEGER.
	bigNumberDigits = 10
)

// MapType returns the backend type literal for a column.
func MapType(c schema.Column) (string, error) {
	typ, _, err := mapType(c)
	return typ, err
}

// mapType reports fallback=true when the column kind is not modeled and the
// generic text type was used instead.
func mapType(c schema.Column) (typ string, fallback bool, err error) {
	if c.IsArray() {
		return varchar(arrayTextSize), false, nil
	}

	switch t := c.Type.(type) {
	case schema.Boolean:
		return "SMALLINT", false, nil
	case schema.Date, schema.Time, schema.DateTime:
		return "TIMESTAMP", false, nil
	case schema.Decimal:
		return "DOUBLE", false, nil
	case schema.Geometry:
		typ, err := GeometryType(t)
		return typ, false, err
	case schema.Blob:
		return "BLOB", false, nil
	case schema.Identifier:
		return "INTEGER", false, nil
	case schema.Number:
		if t.Size > bigNumberDigits {
			return "BIGINT", false, nil
		}
		return "INTEGER", false, nil
	case schema.UUID:
		return varchar(uuidTextSize), false, nil
	case schema.Text:
		if t.Size == schema.Unlimited || t.Size <= 0 {
			return varchar(longTextSize), false, nil
		}
		return varchar(t.Size), false, nil
	case schema.XML:
		return varchar(longTextSize), false, nil
	default:
		return varchar(fallbackTextSize), true, nil
	}
}

// ColumnDefinition renders "<name> <type>[ PRIMARY KEY][ NOT NULL]".
func ColumnDefinition(c schema.Column) (string, error) {
	def, _, err := columnDefinition(c)
	return def, err
}

func columnDefinition(c schema.Column) (string, bool, error) {
	typ, fallback, err := mapType(c)
	if err != nil {
		return "", false, err
	}

	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte(' ')
	sb.WriteString(typ)
	if isPrimaryKey(c) {
		sb.WriteString(" PRIMARY KEY")
	}
	if c.NotNull {
		sb.WriteString(" NOT NULL")
	}
	return sb.String(), fallback, nil
}

func isPrimaryKey(c schema.Column) bool {
	if c.IsArray() {
		return false
	}
	id, ok := c.Type.(schema.Identifier)
	return ok && id.PrimaryKey
}

// isGeometryColumn reports whether the column becomes a backend geometry column.
// Arrays of geometries are stored as text and do not count.
func isGeometryColumn(c schema.Column) bool {
	if c.IsArray() {
		return false
	}
	_, ok := c.Type.(schema.Geometry)
	return ok
}

func varchar(n int) string {
	return fmt.Sprintf("VARCHAR(%d)", n)
}

// kindName names a column type for diagnostics.
func kindName(t schema.ColumnType) string {
	switch t := t.(type) {
	case nil:
		return "<none>"
	case schema.Unknown:
		return t.Kind
	default:
		return fmt.Sprintf("%T", t)
	}
}
