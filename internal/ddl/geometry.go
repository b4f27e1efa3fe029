package ddl

import (
	"fmt"

	"github.com/tordrt/geoddl/internal/schema"
)

// unknownSRS is used when a spatial reference cannot be resolved.
// The backend reads 0 as "no spatial reference system".
const unknownSRS = 0

var geometryKeywords = map[schema.GeometryKind]string{
	schema.Point:             "POINT",
	schema.MultiPoint:        "MULTIPOINT",
	schema.LineString:        "LINESTRING",
	schema.CircularString:    "CIRCULARSTRING",
	schema.CompoundCurve:     "COMPOUNDCURVE",
	schema.MultiLineString:   "MULTILINESTRING",
	schema.MultiCurve:        "MULTICURVE",
	schema.Polygon:           "POLYGON",
	schema.PolyhedralSurface: "POLYGON",
	schema.TIN:               "POLYGON",
	schema.Triangle:          "POLYGON",
	schema.CurvePolygon:      "CURVEPOLYGON",
	schema.MultiPolygon:      "MULTIPOLYGON",
	schema.MultiSurface:      "MULTISURFACE",
}

// GeometryType renders the backend type for a geometry column:
//
//	GEOMETRY(<KEYWORD>,<CODE>,<DIM>)
//
// Geometry collections have no backend keyword and yield an
// *UnsupportedGeometryKindError, as does any kind outside the enumeration.
func GeometryType(g schema.Geometry) (string, error) {
	keyword, ok := geometryKeywords[g.Kind]
	if !ok {
		return "", &UnsupportedGeometryKindError{Kind: g.Kind}
	}

	code, ok := ResolveSRS(g.Authority, g.Identifier)
	if !ok {
		code = unknownSRS
	}

	return fmt.Sprintf("GEOMETRY(%s,%d,%d)", keyword, code, normalizeDimension(g.Dimension)), nil
}

func normalizeDimension(dim int) int {
	if dim == 3 {
		return 3
	}
	return 2
}
