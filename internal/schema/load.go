package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a schema file.
//
//	tables:
//	  - name: parcels
//	    purge: true
//	    columns:
//	      - {name: id, type: identifier, primary_key: true, not_null: true}
//	      - {name: label, type: text, size: 80}
//	      - name: shape
//	        type: geometry
//	        geometry: {kind: multipolygon, authority: EPSG, identifier: "2056", dimension: 2}
type document struct {
	Tables []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Name    string      `yaml:"name"`
	Purge   bool        `yaml:"purge"`
	Columns []columnDoc `yaml:"columns"`
	Indexes []indexDoc  `yaml:"indexes"`
	Refs    []refDoc    `yaml:"references"`
}

type columnDoc struct {
	Name       string       `yaml:"name"`
	Type       string       `yaml:"type"`
	NotNull    bool         `yaml:"not_null"`
	PrimaryKey bool         `yaml:"primary_key"`
	Size       *int         `yaml:"size"`
	Array      string       `yaml:"array"`
	Geometry   *geometryDoc `yaml:"geometry"`
}

type geometryDoc struct {
	Kind       string `yaml:"kind"`
	Authority  string `yaml:"authority"`
	Identifier string `yaml:"identifier"`
	Dimension  int    `yaml:"dimension"`
}

type indexDoc struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique"`
}

type refDoc struct {
	Column       string `yaml:"column"`
	Table        string `yaml:"table"`
	TargetColumn string `yaml:"target_column"`
}

// Load reads and parses a YAML schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML schema document.
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := &Schema{Tables: make([]Table, 0, len(doc.Tables))}
	for i, td := range doc.Tables {
		if strings.TrimSpace(td.Name) == "" {
			return nil, fmt.Errorf("tables[%d].name is required", i)
		}

		t := Table{Name: td.Name, PurgeExisting: td.Purge}
		for j, cd := range td.Columns {
			col, err := cd.column()
			if err != nil {
				return nil, fmt.Errorf("table %s: columns[%d]: %w", td.Name, j, err)
			}
			t.Columns = append(t.Columns, col)
		}
		for _, id := range td.Indexes {
			t.Indexes = append(t.Indexes, Index{Name: id.Name, Columns: id.Columns, IsUnique: id.Unique})
		}
		for _, rd := range td.Refs {
			t.Relations = append(t.Relations, Relation{
				SourceColumn: rd.Column,
				TargetTable:  rd.Table,
				TargetColumn: rd.TargetColumn,
			})
		}
		s.Tables = append(s.Tables, t)
	}

	return s, nil
}

func (cd columnDoc) column() (Column, error) {
	if strings.TrimSpace(cd.Name) == "" {
		return Column{}, fmt.Errorf("name is required")
	}

	arr, err := parseArray(cd.Array)
	if err != nil {
		return Column{}, fmt.Errorf("column %s: %w", cd.Name, err)
	}

	typ, err := cd.columnType()
	if err != nil {
		return Column{}, fmt.Errorf("column %s: %w", cd.Name, err)
	}

	return Column{Name: cd.Name, Type: typ, NotNull: cd.NotNull, Array: arr}, nil
}

func (cd columnDoc) columnType() (ColumnType, error) {
	kind := strings.ToLower(strings.TrimSpace(cd.Type))
	switch kind {
	case "boolean", "bool":
		return Boolean{}, nil
	case "date":
		return Date{}, nil
	case "time":
		return Time{}, nil
	case "datetime", "timestamp":
		return DateTime{}, nil
	case "decimal":
		return Decimal{}, nil
	case "blob", "binary":
		return Blob{}, nil
	case "uuid":
		return UUID{}, nil
	case "xml":
		return XML{}, nil
	case "identifier", "id":
		return Identifier{PrimaryKey: cd.PrimaryKey}, nil
	case "number", "integer":
		size := 0
		if cd.Size != nil {
			size = *cd.Size
		}
		return Number{Size: size}, nil
	case "text", "varchar", "string":
		size := Unlimited
		if cd.Size != nil {
			size = *cd.Size
		}
		return Text{Size: size}, nil
	case "geometry":
		if cd.Geometry == nil {
			return nil, fmt.Errorf("geometry columns need a geometry section")
		}
		gk, err := ParseGeometryKind(cd.Geometry.Kind)
		if err != nil {
			return nil, err
		}
		return Geometry{
			Kind:       gk,
			Authority:  cd.Geometry.Authority,
			Identifier: cd.Geometry.Identifier,
			Dimension:  cd.Geometry.Dimension,
		}, nil
	case "":
		return nil, fmt.Errorf("type is required")
	default:
		return Unknown{Kind: cd.Type}, nil
	}
}

// parseArray accepts "", "none", "unbounded"/"unlimited", or a positive count.
func parseArray(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NotAnArray, nil
	case "unbounded", "unlimited", "*":
		return Unbounded, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid array size %q", s)
	}
	return n, nil
}
