package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/moodboard/internal/api"
	"github.com/limbo/moodboard/internal/service"
	"github.com/limbo/moodboard/pkg/cleanup"
	"github.com/limbo/moodboard/pkg/config"
)

func newRootCmd() *cobra.Command {
	var backend string
	root := &cobra.Command{
		Use:          "moodboard",
		Short:        "Team mood tracker",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&backend, "backend", "", "entry store: postgres, redis, sqlite or memory (defaults to STORE_BACKEND)")

	resolveBackend := func(cfg *config.Config) string {
		if backend != "" {
			return backend
		}
		return cfg.StoreBackend
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.New()
				return runServe(cmd.Context(), cfg, resolveBackend(cfg))
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply PostgreSQL migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(config.New())
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print the dashboard as JSON",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.New()
				return runStats(cmd.Context(), cmd, cfg, resolveBackend(cfg))
			},
		},
	)
	return root
}

func runServe(ctx context.Context, cfg *config.Config, backend string) error {
	defer cleanup.CleanUp()
	repo, opts, err := newRepository(cfg, backend)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serv := api.New(&api.ServicesList{
		EntryService: service.NewMoodEntriesService(repo, opts...),
	})
	slog.Info("server started", slog.String("address", cfg.APIAddress), slog.String("backend", backend))
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		return err
	}
	slog.Info("server stopped")
	return nil
}

func runMigrate(cfg *config.Config) error {
	pgCfg := postgresConfig(cfg)
	db, err := sql.Open("postgres", pgCfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, cfg.MigrationsDir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	slog.Info("migrations applied", slog.String("dir", cfg.MigrationsDir))
	return nil
}

func runStats(ctx context.Context, cmd *cobra.Command, cfg *config.Config, backend string) error {
	defer cleanup.CleanUp()
	repo, opts, err := newRepository(cfg, backend)
	if err != nil {
		return err
	}
	dashboard, err := service.NewMoodEntriesService(repo, opts...).Dashboard(ctx)
	if err != nil {
		return err
	}
	out, err := sonic.ConfigStd.MarshalIndent(api.DashboardResponse{
		Stats:  dashboard.Stats,
		Recent: api.NewEntriesResponse(dashboard.Recent),
	}, "", "  ")
	if err != nil {
		return errors.New("encoding dashboard error: " + err.Error())
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
