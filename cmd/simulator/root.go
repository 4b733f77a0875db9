package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/random"
	"github.com/utakatalp/season-simulator/internal/roster"
	"github.com/utakatalp/season-simulator/internal/store"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	rosterFile  string
	databaseURL string
	debug       bool
	jsonOutput  bool
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "simulator",
		Short: "Season simulator for a college football dynasty dataset",
		Long: `simulator plays out what-if seasons from a roster of team ratings.

It draws weekly matchups, tabulates conference standings, plays conference
finals and a twelve-team national bracket, builds single-team calendars and
projects win totals by Monte-Carlo sampling.

Rosters are read from a spreadsheet (sheet "TeamSeason"), a YAML file, or a
Postgres database populated with "simulator import".`,
		Version:      version,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.rosterFile, "roster", "", "Roster file (.xlsx or .yaml)")
	pf.StringVar(&flags.databaseURL, "database-url", os.Getenv("SIM_DATABASE_URL"), "Postgres connection string")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Print results as JSON")

	cmd.AddCommand(newSeasonCommand(flags))
	cmd.AddCommand(newCalendarCommand(flags))
	cmd.AddCommand(newProjectCommand(flags))
	cmd.AddCommand(newSeasonsCommand(flags))
	cmd.AddCommand(newImportCommand(flags))
	cmd.AddCommand(newServeCommand(flags))

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

func (f *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := "info"
	if f.debug {
		level = "debug"
	}
	return logging.NewLogger(logging.Config{Level: level, Output: cmd.ErrOrStderr()})
}

// openSource prefers the roster file when both sources are configured.
func (f *globalFlags) openSource(ctx context.Context, logger *slog.Logger) (roster.Source, func(), error) {
	switch {
	case f.rosterFile != "":
		mem, warnings, err := roster.LoadFile(f.rosterFile, logger)
		if err != nil {
			return nil, nil, err
		}
		logging.Debug(logger, "roster loaded", "file", f.rosterFile, "warnings", len(warnings))
		return mem, func() {}, nil
	case f.databaseURL != "":
		s, err := store.NewStore(ctx, f.databaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return nil, nil, errors.New("no roster source: pass --roster or --database-url")
	}
}

// resolveSeed returns the flag value when set, otherwise a fresh random seed.
func resolveSeed(cmd *cobra.Command, seed uint64) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return seed, nil
	}
	s, err := random.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("generating seed: %w", err)
	}
	return s, nil
}
