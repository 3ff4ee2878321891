package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/orrery/neowatch/internal/db"
	"github.com/orrery/neowatch/internal/filter"
	"github.com/orrery/neowatch/internal/neo"
	"github.com/orrery/neowatch/internal/writer"
)

// dateLayout is the calendar-date form accepted by the date flags.
const dateLayout = "2006-01-02"

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions

	Date      string
	StartDate string
	EndDate   string

	MinDistance float64
	MaxDistance float64
	MinVelocity float64
	MaxVelocity float64
	MinDiameter float64
	MaxDiameter float64

	Hazardous    bool
	NotHazardous bool

	Designation string
	Name        string

	Limit   int
	Outfile string
	Preset  string
	Presets string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query [criteria flags]",
		Short: "Query close approaches matching a set of criteria",
		Long: `Query the close-approach stream. Every supplied criterion must hold
for an approach to be included (logical AND); with no criteria the
whole stream is returned in source order.

Examples:
  neowatch query --date 2020-01-01
  neowatch query --start-date 2020-01-01 --end-date 2020-12-31 --hazardous
  neowatch query --max-distance 0.05 --min-velocity 20 --limit 10
  neowatch query --preset close-calls --presets queries.yaml --outfile out.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Date, "date", "", "approach date (YYYY-MM-DD)")
	flags.StringVar(&opts.StartDate, "start-date", "", "earliest approach date (YYYY-MM-DD)")
	flags.StringVar(&opts.EndDate, "end-date", "", "latest approach date (YYYY-MM-DD)")
	flags.Float64Var(&opts.MinDistance, "min-distance", 0, "minimum approach distance in au")
	flags.Float64Var(&opts.MaxDistance, "max-distance", 0, "maximum approach distance in au")
	flags.Float64Var(&opts.MinVelocity, "min-velocity", 0, "minimum approach velocity in km/s")
	flags.Float64Var(&opts.MaxVelocity, "max-velocity", 0, "maximum approach velocity in km/s")
	flags.Float64Var(&opts.MinDiameter, "min-diameter", 0, "minimum NEO diameter in km")
	flags.Float64Var(&opts.MaxDiameter, "max-diameter", 0, "maximum NEO diameter in km")
	flags.BoolVar(&opts.Hazardous, "hazardous", false, "only potentially hazardous NEOs")
	flags.BoolVar(&opts.NotHazardous, "not-hazardous", false, "only NEOs not classified as hazardous")
	flags.StringVar(&opts.Designation, "pdes", "", "only the NEO with this primary designation")
	flags.StringVar(&opts.Name, "name", "", "only the NEO with this IAU name")
	flags.IntVar(&opts.Limit, "limit", 0, "stop after this many results (0 = no limit)")
	flags.StringVar(&opts.Outfile, "outfile", "", "write results to this .csv or .json file")
	flags.StringVar(&opts.Preset, "preset", "", "named criteria preset to start from")
	flags.StringVar(&opts.Presets, "presets", "", "path to a YAML presets file")
	cmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
	cmd.MarkFlagsRequiredTogether("preset", "presets")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	criteria, err := buildCriteria(opts, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid query criteria", err)
	}

	filters, err := criteria.Build()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid query criteria", err)
	}

	database, err := loadDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	results := db.Limit(database.Query(filters), opts.Limit)

	if opts.Outfile != "" {
		if err := writer.WriteFile(results, opts.Outfile); err != nil {
			return WrapExitError(ExitCommandError, "failed to write results", err)
		}
		slog.Debug("results written", "path", opts.Outfile)
		return nil
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		if err := writer.WriteJSON(results, out); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode results", err)
		}
		return nil
	}

	count := 0
	for a := range results {
		fmt.Fprintln(out, a)
		count++
	}
	if count == 0 {
		fmt.Fprintln(out, "No matching close approaches.")
	}
	return nil
}

// buildCriteria assembles the effective criteria: the preset (when one
// is named) first, with explicitly set flags layered on top.
func buildCriteria(opts *QueryOptions, cmd *cobra.Command) (filter.Criteria, error) {
	var criteria filter.Criteria

	if opts.Preset != "" {
		preset, err := LoadPreset(opts.Presets, opts.Preset)
		if err != nil {
			return filter.Criteria{}, err
		}
		criteria = preset
	}

	flagged, err := criteriaFromFlags(opts, cmd)
	if err != nil {
		return filter.Criteria{}, err
	}
	return mergeCriteria(criteria, flagged), nil
}

// criteriaFromFlags converts only the flags the user actually set into
// criteria fields. Unset flags stay nil so presets keep their values.
func criteriaFromFlags(opts *QueryOptions, cmd *cobra.Command) (filter.Criteria, error) {
	var c filter.Criteria
	flags := cmd.Flags()

	dates := []struct {
		flag  string
		raw   string
		field **time.Time
	}{
		{"date", opts.Date, &c.Date},
		{"start-date", opts.StartDate, &c.StartDate},
		{"end-date", opts.EndDate, &c.EndDate},
	}
	for _, d := range dates {
		if !flags.Changed(d.flag) {
			continue
		}
		parsed, err := time.ParseInLocation(dateLayout, d.raw, time.UTC)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --%s: %w", d.flag, err)
		}
		*d.field = neo.Time(parsed)
	}

	bounds := []struct {
		flag  string
		value float64
		field **float64
	}{
		{"min-distance", opts.MinDistance, &c.MinDistance},
		{"max-distance", opts.MaxDistance, &c.MaxDistance},
		{"min-velocity", opts.MinVelocity, &c.MinVelocity},
		{"max-velocity", opts.MaxVelocity, &c.MaxVelocity},
		{"min-diameter", opts.MinDiameter, &c.MinDiameter},
		{"max-diameter", opts.MaxDiameter, &c.MaxDiameter},
	}
	for _, b := range bounds {
		if flags.Changed(b.flag) {
			*b.field = neo.Float(b.value)
		}
	}

	if flags.Changed("hazardous") {
		c.Hazardous = neo.Bool(true)
	}
	if flags.Changed("not-hazardous") {
		c.Hazardous = neo.Bool(false)
	}
	if flags.Changed("pdes") {
		c.Designation = neo.String(opts.Designation)
	}
	if flags.Changed("name") {
		c.Name = neo.String(opts.Name)
	}
	return c, nil
}

// mergeCriteria overlays every set field of override onto base.
func mergeCriteria(base, override filter.Criteria) filter.Criteria {
	if override.Date != nil {
		base.Date = override.Date
	}
	if override.StartDate != nil {
		base.StartDate = override.StartDate
	}
	if override.EndDate != nil {
		base.EndDate = override.EndDate
	}
	if override.MinDistance != nil {
		base.MinDistance = override.MinDistance
	}
	if override.MaxDistance != nil {
		base.MaxDistance = override.MaxDistance
	}
	if override.MinVelocity != nil {
		base.MinVelocity = override.MinVelocity
	}
	if override.MaxVelocity != nil {
		base.MaxVelocity = override.MaxVelocity
	}
	if override.MinDiameter != nil {
		base.MinDiameter = override.MinDiameter
	}
	if override.MaxDiameter != nil {
		base.MaxDiameter = override.MaxDiameter
	}
	if override.Hazardous != nil {
		base.Hazardous = override.Hazardous
	}
	if override.Designation != nil {
		base.Designation = override.Designation
	}
	if override.Name != nil {
		base.Name = override.Name
	}
	return base
}
