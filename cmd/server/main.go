package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/drivesync/internal/cache"
	"github.com/iudanet/drivesync/internal/config"
	"github.com/iudanet/drivesync/internal/drive"
	"github.com/iudanet/drivesync/internal/server"
	"github.com/iudanet/drivesync/internal/server/storage/sqlite"
	"github.com/iudanet/drivesync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "drivesync-server",
		Short:        "Drive synchronization server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}
	serve.Flags().String("server-addr", ":8080", "listen address")
	serve.Flags().String("server-db-path", "drivesync.db", "path to SQLite database")
	serve.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	serve.Flags().String("log-format", "json", "log format: json, text")
	serve.Flags().Int("drive-max-file-actions", 500, "max non-trivial actions per file sync pass")
	serve.Flags().Int("drive-max-directory-actions", 1000, "max non-trivial actions per folder sync pass")

	root.AddCommand(serve, &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	})

	return root
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	logger.Info("Drivesync server starting", "version", Version, "addr", cfg.Server.Addr)

	store, err := sqlite.New(ctx, cfg.Server.DBPath, sqlite.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// окно подавления должно быть не больше времени жизни записи в кэше
	seen := cache.New[string, time.Time](2*cfg.Drive.WarningWindow, cache.WithCapacity(cfg.Drive.WarningCacheSize))
	warn := sync.NewWarnLogger(logger, seen, sync.WithWarnWindow(cfg.Drive.WarningWindow))

	events := drive.NewEventBuffer(cfg.Drive.ConsolidationDelay, cfg.Drive.MaxDelay, cfg.Drive.DefaultDelay)
	service := drive.NewService(store, warn, events, drive.Limits{
		MaxFileActions:      cfg.Drive.MaxFileActions,
		MaxDirectoryActions: cfg.Drive.MaxDirectoryActions,
	}, logger)

	srv := server.New(cfg.Server, cfg.Drive.DrainInterval, service, store, events, logger, Version)
	return srv.Run(ctx)
}

func printVersion(cmd *cobra.Command) {
	cmd.Printf("Drivesync Server\n")
	cmd.Printf("Version:    %s\n", Version)
	cmd.Printf("Build Date: %s\n", BuildDate)
	cmd.Printf("Git Commit: %s\n", GitCommit)
}
