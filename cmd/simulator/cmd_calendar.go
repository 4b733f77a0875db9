package main

import (
	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/simulation"
)

func newCalendarCommand(g *globalFlags) *cobra.Command {
	var (
		season string
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "calendar <team>",
		Short: "Simulate one team's twelve-game calendar and bowl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := g.logger(cmd)
			src, closeSrc, err := g.openSource(ctx, logger)
			if err != nil {
				return err
			}
			defer closeSrc()

			r, err := src.Roster(ctx, season)
			if err != nil {
				return err
			}
			s, err := resolveSeed(cmd, seed)
			if err != nil {
				return err
			}
			cal, err := simulation.New(logger, nil).Calendar(r, args[0], s)
			if err != nil {
				return err
			}
			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), cal)
			}
			printCalendar(cmd.OutOrStdout(), cal)
			return nil
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season of the team")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: random)")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}
