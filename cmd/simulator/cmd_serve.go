package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/utakatalp/season-simulator/internal/api"
	"github.com/utakatalp/season-simulator/internal/config"
	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/metrics"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Long: `Serve the simulator as a JSON HTTP API. Settings come from the
environment (SIM_ADDR, SIM_DATABASE_URL, SIM_ROSTER_FILE, SIM_DEFAULT_WEEKS,
SIM_DEFAULT_TRIALS, SIM_MAX_TRIALS, SIM_MAJOR_CONFERENCES, LOG_LEVEL,
LOG_FORMAT); --roster and --database-url override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if g.rosterFile != "" {
				cfg.RosterFile = g.rosterFile
			}
			if g.databaseURL != "" {
				cfg.DatabaseURL = g.databaseURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if g.debug {
				cfg.LogLevel = "debug"
			}
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Service: "season-simulator",
				Version: version,
				Output:  cmd.ErrOrStderr(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			src, closeSrc, err := (&globalFlags{rosterFile: cfg.RosterFile, databaseURL: cfg.DatabaseURL}).openSource(ctx, logger)
			if err != nil {
				return err
			}
			defer closeSrc()

			rec := metrics.NewRecorder()
			handler := api.NewHandler(src, simulation.New(logger, rec), api.Defaults{
				Weeks:            cfg.DefaultWeeks,
				Trials:           cfg.DefaultTrials,
				MaxTrials:        cfg.MaxTrials,
				MajorConferences: cfg.MajorConferences,
			}, logger)

			srv := &http.Server{
				Addr:         cfg.Addr,
				Handler:      api.NewRouter(handler, rec, logger),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Info(logger, "listening", "addr", cfg.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logging.Info(logger, "shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}
