// Package writer exports query result streams to flat CSV or JSON files.
//
// Each output row merges an approach's serialization view with its
// linked NEO's view into the fixed seven-field record:
//
//	datetime_utc, distance_au, velocity_km_s, designation, name,
//	diameter_km, potentially_hazardous
//
// Per-format conventions for unknown values:
//
//   - CSV: unknown diameter is the literal "nan"; unknown distance and
//     velocity are empty cells; an unset hazard flag prints "False".
//   - JSON: unknown diameter is the string "NaN"; unknown distance and
//     velocity are null; an unset hazard flag is false.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/orrery/neowatch/internal/neo"
)

// Fieldnames is the exact header of the flat export format, in order.
var Fieldnames = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// UnsupportedFormatError reports an output path whose extension maps to
// no known writer.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q: use .csv or .json", filepath.Ext(e.Path))
}

// WriteFile writes the result stream to path, choosing the format from
// the file extension.
func WriteFile(results iter.Seq[*neo.Approach], path string) error {
	var write func(iter.Seq[*neo.Approach], io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".json":
		write = WriteJSON
	default:
		return &UnsupportedFormatError{Path: path}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	if err := write(results, f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close output file")
}

// WriteCSV writes the stream as CSV with a header row.
func WriteCSV(results iter.Seq[*neo.Approach], w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Fieldnames); err != nil {
		return errors.Wrap(err, "write CSV header")
	}

	for a := range results {
		record := []string{
			a.TimeString(),
			csvFloat(a.Distance, ""),
			csvFloat(a.Velocity, ""),
			a.Neo.Designation,
			csvName(a.Neo.Name),
			csvFloat(a.Neo.Diameter, "nan"),
			csvBool(a.Neo.Hazardous),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write CSV row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush CSV")
}

// jsonNEO is the nested NEO view in JSON output. DiameterKM is any
// because an unknown diameter serializes as the string "NaN", which a
// float field cannot hold.
type jsonNEO struct {
	Designation          string `json:"designation"`
	Name                 string `json:"name"`
	DiameterKM           any    `json:"diameter_km"`
	PotentiallyHazardous bool   `json:"potentially_hazardous"`
}

type jsonApproach struct {
	DatetimeUTC string   `json:"datetime_utc"`
	DistanceAU  *float64 `json:"distance_au"`
	VelocityKMS *float64 `json:"velocity_km_s"`
	NEO         jsonNEO  `json:"neo"`
}

// WriteJSON writes the stream as a tab-indented JSON array.
func WriteJSON(results iter.Seq[*neo.Approach], w io.Writer) error {
	rows := []jsonApproach{}
	for a := range results {
		o := a.Neo
		var diameter any = "NaN"
		if o.Diameter != nil {
			diameter = *o.Diameter
		}
		rows = append(rows, jsonApproach{
			DatetimeUTC: a.TimeString(),
			DistanceAU:  a.Distance,
			VelocityKMS: a.Velocity,
			NEO: jsonNEO{
				Designation:          o.Designation,
				Name:                 csvName(o.Name),
				DiameterKM:           diameter,
				PotentiallyHazardous: o.Hazardous != nil && *o.Hazardous,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	return errors.Wrap(enc.Encode(rows), "encode JSON")
}

func csvFloat(v *float64, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func csvName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

func csvBool(b *bool) string {
	if b != nil && *b {
		return "True"
	}
	return "False"
}
