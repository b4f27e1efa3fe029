package ddl

import (
	"errors"
	"testing"

	"github.com/tordrt/geoddl/internal/schema"
)

func TestGeometryType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		geom schema.Geometry
		want string
	}{
		{
			name: "multipoint 2056",
			geom: schema.Geometry{Kind: schema.MultiPoint, Authority: "EPSG", Identifier: "2056", Dimension: 2},
			want: "GEOMETRY(MULTIPOINT,2056,2)",
		},
		{
			name: "point 2056",
			geom: schema.Geometry{Kind: schema.Point, Authority: "EPSG", Identifier: "2056", Dimension: 2},
			want: "GEOMETRY(POINT,2056,2)",
		},
		{
			name: "lower case authority",
			geom: schema.Geometry{Kind: schema.LineString, Authority: "epsg", Identifier: "21781", Dimension: 3},
			want: "GEOMETRY(LINESTRING,21781,3)",
		},
		{
			name: "foreign authority",
			geom: schema.Geometry{Kind: schema.Polygon, Authority: "ESRI", Identifier: "102100", Dimension: 2},
			want: "GEOMETRY(POLYGON,0,2)",
		},
		{
			name: "non numeric identifier",
			geom: schema.Geometry{Kind: schema.Polygon, Authority: "EPSG", Identifier: "CH1903+", Dimension: 2},
			want: "GEOMETRY(POLYGON,0,2)",
		},
		{
			name: "missing reference",
			geom: schema.Geometry{Kind: schema.MultiSurface},
			want: "GEOMETRY(MULTISURFACE,0,2)",
		},
		{
			name: "dimension 4 normalizes",
			geom: schema.Geometry{Kind: schema.CompoundCurve, Authority: "EPSG", Identifier: "2056", Dimension: 4},
			want: "GEOMETRY(COMPOUNDCURVE,2056,2)",
		},
		{
			name: "dimension 0 normalizes",
			geom: schema.Geometry{Kind: schema.CurvePolygon, Authority: "EPSG", Identifier: "2056"},
			want: "GEOMETRY(CURVEPOLYGON,2056,2)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GeometryType(tt.geom)
			if err != nil {
				t.Fatalf("GeometryType() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("GeometryType() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestGeometryTypeKeywords covers every supported subtype, including the
// polygon family that shares one keyword.
func TestGeometryTypeKeywords(t *testing.T) {
	t.Parallel()

	want := map[schema.GeometryKind]string{
		schema.Point:             "GEOMETRY(POINT,2056,2)",
		schema.MultiPoint:        "GEOMETRY(MULTIPOINT,2056,2)",
		schema.LineString:        "GEOMETRY(LINESTRING,2056,2)",
		schema.CircularString:    "GEOMETRY(CIRCULARSTRING,2056,2)",
		schema.CompoundCurve:     "GEOMETRY(COMPOUNDCURVE,2056,2)",
		schema.MultiLineString:   "GEOMETRY(MULTILINESTRING,2056,2)",
		schema.MultiCurve:        "GEOMETRY(MULTICURVE,2056,2)",
		schema.Polygon:           "GEOMETRY(POLYGON,2056,2)",
		schema.PolyhedralSurface: "GEOMETRY(POLYGON,2056,2)",
		schema.TIN:               "GEOMETRY(POLYGON,2056,2)",
		schema.Triangle:          "GEOMETRY(POLYGON,2056,2)",
		schema.CurvePolygon:      "GEOMETRY(CURVEPOLYGON,2056,2)",
		schema.MultiPolygon:      "GEOMETRY(MULTIPOLYGON,2056,2)",
		schema.MultiSurface:      "GEOMETRY(MULTISURFACE,2056,2)",
	}

	for kind, w := range want {
		got, err := GeometryType(schema.Geometry{Kind: kind, Authority: "EPSG", Identifier: "2056", Dimension: 2})
		if err != nil {
			t.Errorf("GeometryType(%s) error = %v", kind, err)
			continue
		}
		if got != w {
			t.Errorf("GeometryType(%s) = %q, want %q", kind, got, w)
		}
	}
}

func TestGeometryTypeUnsupported(t *testing.T) {
	t.Parallel()

	for _, kind := range []schema.GeometryKind{schema.GeometryCollection, schema.GeometryKind(99), schema.GeometryKind(-1)} {
		got, err := GeometryType(schema.Geometry{Kind: kind, Authority: "EPSG", Identifier: "2056"})
		if err == nil {
			t.Errorf("GeometryType(%s) = %q, want error", kind, got)
			continue
		}
		if !errors.Is(err, ErrUnsupportedGeometryKind) {
			t.Errorf("GeometryType(%s) error = %v, want ErrUnsupportedGeometryKind", kind, err)
		}
		var ge *UnsupportedGeometryKindError
		if !errors.As(err, &ge) || ge.Kind != kind {
			t.Errorf("GeometryType(%s) error = %#v, want kind %s", kind, err, kind)
		}
	}
}
