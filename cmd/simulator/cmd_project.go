package main

import (
	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/simulation"
)

func newProjectCommand(g *globalFlags) *cobra.Command {
	var (
		season string
		games  int
		trials int
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "project <team>",
		Short: "Project a team's win distribution by Monte-Carlo sampling",
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
			p, err := simulation.New(logger, nil).Project(r, args[0], games, trials, s)
			if err != nil {
				return err
			}
			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			printProjection(cmd.OutOrStdout(), p)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&season, "season", "", "Season of the team")
	f.IntVar(&games, "games", simulation.DefaultProjectGames, "Games per sampled season")
	f.IntVar(&trials, "trials", simulation.DefaultTrials, "Number of sampled seasons")
	f.Uint64Var(&seed, "seed", 0, "Random seed (default: random)")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}
