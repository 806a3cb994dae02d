package main

import (
	"context"
	"time"

	"github.com/riskibarqy/livematch/internal/app"
	"github.com/riskibarqy/livematch/internal/observability"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func runCmd() *cobra.Command {
	var fixtureIDs []int64
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Poll enrolled fixtures until they finish or the process stops",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(func(ctx context.Context, rt *app.Runtime) error {
				return runTracker(ctx, rt, fixtureIDs)
			})
		},
	}
	cmd.Flags().Int64SliceVar(&fixtureIDs, "fixture", nil, "Fixture id to enroll (repeatable)")
	return cmd
}

func runTracker(ctx context.Context, rt *app.Runtime, fixtureIDs []int64) error {
	logger := rt.Logger

	shutdownTelemetry, err := observability.InitTelemetry(rt.Config, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn("shutdown telemetry", "error", err)
		}
	}()

	ops := rt.NewOpsServer()
	ops.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := ops.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown ops server", "error", err)
		}
	}()

	tracker, err := rt.NewTracker(app.NewSnapshotSource(rt.Config, logger))
	if err != nil {
		return err
	}
	defer tracker.Close()

	for _, fixtureID := range fixtureIDs {
		if err := tracker.Enroll(ctx, fixtureID); err != nil {
			logger.Error("enroll fixture", "fixture_id", fixtureID, "error", err)
			return err
		}
		logger.Info("fixture enrolled", "fixture_id", fixtureID)
	}

	ops.SetReady(true)
	logger.Info("live tracker started",
		"fixtures", len(fixtureIDs),
		"poll_interval", rt.Config.LivePollInterval,
		"feed_source", rt.Config.FeedSource,
		"ops_addr", rt.Config.OpsAddr,
	)

	err = tracker.Run(ctx)
	ops.SetReady(false)
	logger.Info("live tracker stopped")
	return err
}
