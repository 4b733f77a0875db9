package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/roster"
	"github.com/utakatalp/season-simulator/internal/store"
)

func newImportCommand(g *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import --file <roster.xlsx|roster.yaml>",
		Short: "Load a roster spreadsheet or YAML file into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.databaseURL == "" {
				return errors.New("import needs --database-url or SIM_DATABASE_URL")
			}
			ctx := cmd.Context()
			logger := g.logger(cmd)

			mem, warnings, err := roster.LoadFile(file, logger)
			if err != nil {
				return err
			}
			s, err := store.NewStore(ctx, g.databaseURL, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(ctx); err != nil {
				return err
			}
			records := mem.Records()
			if err := s.UpsertRecords(ctx, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows (%d repaired or skipped)\n", len(records), len(warnings))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "roster file to import (.xlsx or .yaml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
