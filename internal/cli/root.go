// Package cli implements the neowatch command-line interface on top of
// the loader, database, filter and writer packages.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	NEOFile string // path to the NEO CSV
	CADFile string // path to the close-approach JSON
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the neowatch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "neowatch",
		Short: "Explore near-Earth objects and their close approaches",
		Long: `neowatch links NASA's near-Earth object records with their recorded
close approaches and answers questions about them: inspect a single NEO
by designation or name, or query the approach stream with date,
distance, velocity, diameter and hazard criteria.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.NEOFile, "neofile", "data/neos.csv", "path to the NEO CSV file")
	cmd.PersistentFlags().StringVar(&opts.CADFile, "cadfile", "data/cad.json", "path to the close-approach JSON file")

	// Add subcommands
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}

// configureLogging installs the default slog logger. Every run gets a
// trace id so interleaved stderr from scripted invocations stays
// attributable.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler).With("trace_id", uuid.NewString()))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
