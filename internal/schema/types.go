package schema

import (
	"fmt"
	"strings"
)

// Schema represents a complete abstract schema
type Schema struct {
	Tables []Table
}

// Table represents an abstract table
type Table struct {
	Name    string
	Columns []Column

	// PurgeExisting requests a DELETE FROM after the table has been created
	// (or found to exist already).
	PurgeExisting bool

	Indexes   []Index
	Relations []Relation
}

// Array sizes with special meaning.
const (
	NotAnArray = 0
	Unbounded  = -1
)

// Unlimited marks a text column without a declared length.
const Unlimited = -1

// Column represents an abstract column
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool

	// Array is NotAnArray, Unbounded, or a positive element count.
	Array int
}

// IsArray reports whether the column carries the array modifier
func (c Column) IsArray() bool {
	return c.Array != NotAnArray
}

// ColumnType is the closed set of abstract column kinds.
// Implementations live in this package only.
type ColumnType interface {
	columnType()
}

type (
	// Boolean is a true/false column
	Boolean struct{}
	// Date is a calendar date
	Date struct{}
	// Time is a time of day
	Time struct{}
	// DateTime is a date plus time of day
	DateTime struct{}
	// Decimal is a fixed-point number
	Decimal struct{}
	// Blob is opaque binary data
	Blob struct{}
	// UUID is a 128-bit identifier
	UUID struct{}
	// XML is an XML document
	XML struct{}
)

// Identifier is an integer object identifier, optionally the table's primary key
type Identifier struct {
	PrimaryKey bool
}

// Number is an integral number with a declared digit count
type Number struct {
	Size int
}

// Text is variable-length text. Size is Unlimited or the maximum length.
type Text struct {
	Size int
}

// Unknown carries a kind the model does not know about.
type Unknown struct {
	Kind string
}

func (Boolean) columnType()    {}
func (Date) columnType()       {}
func (Time) columnType()       {}
func (DateTime) columnType()   {}
func (Decimal) columnType()    {}
func (Blob) columnType()       {}
func (UUID) columnType()       {}
func (XML) columnType()        {}
func (Identifier) columnType() {}
func (Number) columnType()     {}
func (Text) columnType()       {}
func (Unknown) columnType()    {}
func (Geometry) columnType()   {}

// Geometry is a spatial column
type Geometry struct {
	Kind       GeometryKind
	Authority  string // e.g. "EPSG"
	Identifier string // e.g. "2056"
	Dimension  int
}

// GeometryKind enumerates geometry subtypes
type GeometryKind int

const (
	Point GeometryKind = iota
	MultiPoint
	LineString
	CircularString
	CompoundCurve
	MultiLineString
	MultiCurve
	Polygon
	PolyhedralSurface
	TIN
	Triangle
	CurvePolygon
	MultiPolygon
	MultiSurface
	GeometryCollection
)

var geometryKindNames = [...]string{
	Point:              "point",
	MultiPoint:         "multipoint",
	LineString:         "linestring",
	CircularString:     "circularstring",
	CompoundCurve:      "compoundcurve",
	MultiLineString:    "multilinestring",
	MultiCurve:         "multicurve",
	Polygon:            "polygon",
	PolyhedralSurface:  "polyhedralsurface",
	TIN:                "tin",
	Triangle:           "triangle",
	CurvePolygon:       "curvepolygon",
	MultiPolygon:       "multipolygon",
	MultiSurface:       "multisurface",
	GeometryCollection: "geometrycollection",
}

func (k GeometryKind) String() string {
	if k < 0 || int(k) >= len(geometryKindNames) {
		return fmt.Sprintf("GeometryKind(%d)", int(k))
	}
	return geometryKindNames[k]
}

// ParseGeometryKind parses a geometry subtype name. Underscores and case are ignored.
func ParseGeometryKind(s string) (GeometryKind, error) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for k, n := range geometryKindNames {
		if n == name {
			return GeometryKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown geometry kind: %q", s)
}

// Index represents an index on a table
type Index struct {
	Name     string
	Columns  []string
	IsUnique bool
}

// Relation represents a foreign key relationship
type Relation struct {
	SourceColumn string
	TargetTable  string
	TargetColumn string
}
