package cli

import (
	"log/slog"

	"github.com/orrery/neowatch/internal/db"
	"github.com/orrery/neowatch/internal/loader"
)

// loadDatabase reads both source files and links them into a database.
// Every command goes through here, so load and link failures map to exit
// codes in one place.
func loadDatabase(opts *RootOptions) (*db.Database, error) {
	slog.Debug("loading NEO records", "path", opts.NEOFile)
	neos, err := loader.LoadNEOs(opts.NEOFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load NEO records", err)
	}

	slog.Debug("loading close approaches", "path", opts.CADFile)
	approaches, err := loader.LoadApproaches(opts.CADFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load close approaches", err)
	}

	database, err := db.New(neos, approaches)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to link data set", err)
	}
	slog.Debug("database ready", "neos", len(neos), "approaches", len(approaches))
	return database, nil
}
