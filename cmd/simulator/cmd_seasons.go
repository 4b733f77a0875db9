package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeasonsCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List the seasons available in the roster source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			src, closeSrc, err := g.openSource(ctx, g.logger(cmd))
			if err != nil {
				return err
			}
			defer closeSrc()

			seasons, err := src.Seasons(ctx)
			if err != nil {
				return err
			}
			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), seasons)
			}
			for _, s := range seasons {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
