// Command livematch tracks in-play fixtures and reconciles their live state.
//
// Usage:
//
//	livematch run --fixture 1035048 --fixture 1035049
//	livematch apply --file ./testdata/feed/1035048/001.json
//	livematch teardown --fixture 1035048
//	livematch migrate up
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/livematch/internal/app"
	"github.com/riskibarqy/livematch/internal/config"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("load .env", "error", err)
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "livematch",
		Short:         "Live match reconciliation service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(runCmd())
	root.AddCommand(applyCmd())
	root.AddCommand(teardownCmd())
	root.AddCommand(migrateCmd())
	return root
}

// loadEnv reads config and installs the process-wide logger.
func loadEnv() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	return cfg, logger, nil
}

// withRuntime runs fn with a signal-aware context and a fully wired runtime.
func withRuntime(fn func(ctx context.Context, rt *app.Runtime) error) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.NewRuntime(ctx, cfg, logger)
	if err != nil {
		logger.Error("build runtime", "error", err)
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Warn("close runtime", "error", err)
		}
	}()

	return fn(ctx, rt)
}
