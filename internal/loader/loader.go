// Package loader reads the two source files of the data set: the NEO
// physical record CSV and the close-approach JSON table.
//
// The loaders own all format-specific parsing and type coercion. Missing
// numeric fields become nil pointers, missing names become nil, and the
// hazard flag is coerced to a boolean exactly once here, so downstream
// code never sees the raw "Y"/"N" spellings. The records come back
// unlinked, in file order, ready for db.New.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/orrery/neowatch/internal/neo"
)

// approachTimeLayout is the compact calendar form used by the source
// data, e.g. "1900-Dec-27 01:30".
const approachTimeLayout = "2006-Jan-02 15:04"

// Columns consumed from the NEO CSV. The file carries many more; the
// rest are ignored.
const (
	colDesignation = "pdes"
	colName        = "name"
	colDiameter    = "diameter"
	colHazardous   = "pha"
)

// Fields consumed from the close-approach JSON table.
const (
	fieldDesignation = "des"
	fieldTime        = "cd"
	fieldDistance    = "dist"
	fieldVelocity    = "v_rel"
)

// ParseError reports a malformed value in a source file.
type ParseError struct {
	Path   string
	Row    int // 1-based data row, excluding the header
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: %v", e.Path, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadNEOs reads near-Earth objects from a CSV file with a header row.
func LoadNEOs(path string) ([]*neo.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open NEO file")
	}
	defer f.Close()

	objects, err := ReadNEOs(f)
	if err != nil {
		return nil, annotate(err, path)
	}
	return objects, nil
}

// ReadNEOs parses NEO CSV records from r. Split out from LoadNEOs so
// tests can feed literal data without touching the filesystem.
func ReadNEOs(r io.Reader) ([]*neo.Object, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read CSV header")
	}
	cols, err := columnIndex(header, colDesignation, colName, colDiameter, colHazardous)
	if err != nil {
		return nil, err
	}

	var objects []*neo.Object
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read CSV row %d", row)
		}

		var diameter *float64
		if raw := record[cols[colDiameter]]; raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Row: row, Column: colDiameter, Err: err}
			}
			diameter = &v
		}

		var name *string
		if raw := record[cols[colName]]; raw != "" {
			name = neo.String(raw)
		}

		// "Y" marks a potentially hazardous object; "N" and the empty
		// string both mean not hazardous in this file. The flag is only
		// unset when the column itself is absent, which columnIndex
		// already rejects.
		hazardous := record[cols[colHazardous]] == "Y"

		objects = append(objects, neo.NewObject(
			record[cols[colDesignation]],
			name,
			diameter,
			neo.Bool(hazardous),
		))
	}
	return objects, nil
}

// approachTable is the wire shape of the close-approach JSON document:
// a column-name list and an array of positional rows.
type approachTable struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads close approaches from a JSON table file.
func LoadApproaches(path string) ([]*neo.Approach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open close-approach file")
	}
	defer f.Close()

	approaches, err := ReadApproaches(f)
	if err != nil {
		return nil, annotate(err, path)
	}
	return approaches, nil
}

// ReadApproaches parses the close-approach JSON table from r.
func ReadApproaches(r io.Reader) ([]*neo.Approach, error) {
	var table approachTable
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, errors.Wrap(err, "decode close-approach JSON")
	}

	cols, err := columnIndex(table.Fields, fieldDesignation, fieldTime, fieldDistance, fieldVelocity)
	if err != nil {
		return nil, err
	}

	approaches := make([]*neo.Approach, 0, len(table.Data))
	for i, rowData := range table.Data {
		row := i + 1
		if len(rowData) != len(table.Fields) {
			return nil, errors.Newf("close-approach row %d has %d values, want %d",
				row, len(rowData), len(table.Fields))
		}

		des, err := stringValue(rowData[cols[fieldDesignation]])
		if err != nil {
			return nil, &ParseError{Row: row, Column: fieldDesignation, Err: err}
		}

		var t *time.Time
		if raw, err := stringValue(rowData[cols[fieldTime]]); err != nil {
			return nil, &ParseError{Row: row, Column: fieldTime, Err: err}
		} else if raw != "" {
			parsed, err := time.ParseInLocation(approachTimeLayout, raw, time.UTC)
			if err != nil {
				return nil, &ParseError{Row: row, Column: fieldTime, Err: err}
			}
			t = &parsed
		}

		dist, err := floatValue(rowData[cols[fieldDistance]])
		if err != nil {
			return nil, &ParseError{Row: row, Column: fieldDistance, Err: err}
		}
		vel, err := floatValue(rowData[cols[fieldVelocity]])
		if err != nil {
			return nil, &ParseError{Row: row, Column: fieldVelocity, Err: err}
		}

		approaches = append(approaches, neo.NewApproach(des, t, dist, vel))
	}
	return approaches, nil
}

// columnIndex maps the wanted column names to their positions, failing
// on any that are missing.
func columnIndex(header []string, wanted ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	cols := make(map[string]int, len(wanted))
	for _, name := range wanted {
		i, ok := index[name]
		if !ok {
			return nil, errors.Newf("source data is missing column %q", name)
		}
		cols[name] = i
	}
	return cols, nil
}

// stringValue coerces a JSON cell to a string. The source emits most
// values quoted, but numbers show up bare in some vintages of the file.
func stringValue(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", errors.Newf("unexpected value %v of type %T", v, v)
	}
}

// floatValue coerces a JSON cell to an optional float. null and the
// empty string mean the value is unknown.
func floatValue(v any) (*float64, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return neo.Float(n), nil
	case string:
		if n == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil, err
		}
		return neo.Float(parsed), nil
	default:
		return nil, errors.Newf("unexpected value %v of type %T", v, v)
	}
}

// annotate stamps the file path onto any ParseError bubbling out of the
// reader helpers.
func annotate(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path
		return pe
	}
	return errors.Wrapf(err, "load %s", path)
}
