package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

func newSeasonCommand(g *globalFlags) *cobra.Command {
	var (
		seasons    []string
		weeks      int
		seed       uint64
		noPlayoffs bool
		odd        string
		majors     []string
	)
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Simulate a full season with standings and playoffs",
		Long: `Simulate one or more seasons: weekly random pairings, conference
standings, conference finals, a twelve-team playoff field and the national
bracket. Several --season values run concurrently, each with a seed derived
from --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := g.logger(cmd)
			src, closeSrc, err := g.openSource(ctx, logger)
			if err != nil {
				return err
			}
			defer closeSrc()

			policy, err := league.ParseOddPolicy(odd)
			if err != nil {
				return err
			}
			opts := simulation.DefaultOptions()
			opts.Weeks = weeks
			opts.Playoffs = !noPlayoffs
			opts.OddPolicy = policy
			if len(majors) > 0 {
				opts.MajorConferences = majors
			}

			base, err := resolveSeed(cmd, seed)
			if err != nil {
				return err
			}
			if len(seasons) == 0 {
				if seasons, err = src.Seasons(ctx); err != nil {
					return err
				}
				if len(seasons) == 0 {
					return errors.New("roster source has no seasons")
				}
				seasons = seasons[:1]
			}

			engine := simulation.New(logger, nil)
			var reports []simulation.Report
			if len(seasons) == 1 {
				r, err := src.Roster(ctx, seasons[0])
				if err != nil {
					return err
				}
				rep, err := engine.Season(r, base, opts)
				if err != nil {
					return err
				}
				reports = append(reports, rep)
			} else {
				if reports, err = engine.RunSeasons(ctx, src, seasons, base, opts); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				if len(reports) == 1 {
					return writeJSON(out, reports[0])
				}
				return writeJSON(out, reports)
			}
			for i, rep := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printReport(out, rep)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&seasons, "season", nil, "Season(s) to simulate (default: first season in the roster)")
	f.IntVar(&weeks, "weeks", simulation.DefaultWeeks, "Number of regular-season weeks")
	f.Uint64Var(&seed, "seed", 0, "Random seed (default: random)")
	f.BoolVar(&noPlayoffs, "no-playoffs", false, "Stop after regular-season standings")
	f.StringVar(&odd, "odd", "bye", "Odd bracket round handling: bye or drop")
	f.StringSliceVar(&majors, "major", nil, "Conferences guaranteed a playoff spot (default: SEC, Big Ten, Big 12, ACC, Pac-12)")
	return cmd
}
