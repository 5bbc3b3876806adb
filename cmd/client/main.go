package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/iudanet/drivesync/internal/client/api"
	"github.com/iudanet/drivesync/internal/client/cli"
	"github.com/iudanet/drivesync/internal/client/iocli"
	"github.com/iudanet/drivesync/internal/client/storage/boltdb"
	"github.com/iudanet/drivesync/internal/client/sync"
	"github.com/iudanet/drivesync/internal/config"
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
	var (
		configPath  string
		diagnostics bool
	)

	root := &cobra.Command{
		Use:          "drivesync",
		Short:        "Drive synchronization client",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to config file")
	flags.String("client-server-url", "http://localhost:8080", "server URL")
	flags.String("client-root", ".", "synchronized folder")
	flags.String("client-state-path", "drivesync-client.db", "path to local state database")
	flags.String("client-device", "", "device name, defaults to the generated device id")
	flags.Int("client-user-id", 0, "user id")
	flags.Int("client-context-id", 0, "sync context id")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	// run открывает локальное состояние и выполняет команду клиента
	run := func(cmd *cobra.Command, command func(context.Context, *cli.Cli) error) error {
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runClient(ctx, cfg, diagnostics, command)
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the local folder with the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *cli.Cli) error { return c.RunSync(ctx) })
		},
	}
	syncCmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "log the server diagnostics trace")

	root.AddCommand(syncCmd, &cobra.Command{
		Use:   "status",
		Short: "Show local changes since the last sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *cli.Cli) error { return c.RunStatus(ctx) })
		},
	}, &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	})

	return root
}

func runClient(ctx context.Context, cfg *config.Config, diagnostics bool, command func(context.Context, *cli.Cli) error) error {
	if cfg.Client.UserID <= 0 || cfg.Client.ContextID <= 0 {
		return fmt.Errorf("client.user_id and client.context_id must be positive")
	}

	logCfg := cfg.Log
	logCfg.Format = "text"
	logger := logCfg.NewLogger(os.Stderr)

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.Client.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	device := cfg.Client.Device
	if device == "" {
		device, err = boltStorage.DeviceID(ctx)
		if err != nil {
			return err
		}
	}

	apiClient := api.NewClient(cfg.Client.ServerURL, api.Identity{
		Device:    device,
		UserID:    cfg.Client.UserID,
		ContextID: cfg.Client.ContextID,
	}, cfg.Client.Timeout)

	var opts []sync.Option
	if diagnostics {
		opts = append(opts, sync.WithDiagnostics())
	}
	fs := osfs.New(cfg.Client.Root)
	syncService := sync.NewService(apiClient, fs, boltStorage, boltStorage, logger.With("device", device), opts...)

	return command(ctx, cli.New(iocli.NewStdio(), syncService))
}

func printVersion(cmd *cobra.Command) {
	cmd.Printf("Drivesync Client\n")
	cmd.Printf("Version:    %s\n", Version)
	cmd.Printf("Build Date: %s\n", BuildDate)
	cmd.Printf("Git Commit: %s\n", GitCommit)
}
