package cli

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/orrery/neowatch/internal/filter"
	"github.com/orrery/neowatch/internal/neo"
)

// presetFile is the on-disk shape of a query presets file:
//
//	presets:
//	  close-calls:
//	    max-distance: 0.05
//	    hazardous: true
//	  eros:
//	    name: Eros
//	    start-date: 1900-01-01
type presetFile struct {
	Presets map[string]presetSpec `yaml:"presets"`
}

// presetSpec mirrors the query criteria flags. Pointer fields
// distinguish "not given" from zero values, same as the flags do.
type presetSpec struct {
	Date      string `yaml:"date"`
	StartDate string `yaml:"start-date"`
	EndDate   string `yaml:"end-date"`

	MinDistance *float64 `yaml:"min-distance"`
	MaxDistance *float64 `yaml:"max-distance"`
	MinVelocity *float64 `yaml:"min-velocity"`
	MaxVelocity *float64 `yaml:"max-velocity"`
	MinDiameter *float64 `yaml:"min-diameter"`
	MaxDiameter *float64 `yaml:"max-diameter"`

	Hazardous *bool `yaml:"hazardous"`

	Designation string `yaml:"pdes"`
	Name        string `yaml:"name"`
}

// LoadPreset reads the presets file and returns the named criteria set.
func LoadPreset(path, name string) (filter.Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return filter.Criteria{}, errors.Wrap(err, "read presets file")
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return filter.Criteria{}, errors.Wrap(err, "parse presets file")
	}

	p, ok := file.Presets[name]
	if !ok {
		return filter.Criteria{}, errors.Newf("preset %q not found in %s", name, path)
	}
	return p.toCriteria()
}

func (s presetSpec) toCriteria() (filter.Criteria, error) {
	c := filter.Criteria{
		MinDistance: s.MinDistance,
		MaxDistance: s.MaxDistance,
		MinVelocity: s.MinVelocity,
		MaxVelocity: s.MaxVelocity,
		MinDiameter: s.MinDiameter,
		MaxDiameter: s.MaxDiameter,
		Hazardous:   s.Hazardous,
	}
	if s.Designation != "" {
		c.Designation = neo.String(s.Designation)
	}
	if s.Name != "" {
		c.Name = neo.String(s.Name)
	}

	dates := []struct {
		key   string
		raw   string
		field **time.Time
	}{
		{"date", s.Date, &c.Date},
		{"start-date", s.StartDate, &c.StartDate},
		{"end-date", s.EndDate, &c.EndDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseInLocation(dateLayout, d.raw, time.UTC)
		if err != nil {
			return filter.Criteria{}, errors.Wrapf(err, "preset field %q", d.key)
		}
		*d.field = neo.Time(parsed)
	}
	return c, nil
}
