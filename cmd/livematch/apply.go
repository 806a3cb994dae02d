package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/livematch/external/feedfile"
	"github.com/riskibarqy/livematch/internal/app"
	"github.com/spf13/cobra"
)

func applyCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply recorded snapshot files in order as reconciliation passes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				return fmt.Errorf("at least one --file is required")
			}
			return withRuntime(func(ctx context.Context, rt *app.Runtime) error {
				for _, path := range files {
					snapshot, err := feedfile.ReadSnapshotFile(path)
					if err != nil {
						return err
					}
					if _, err := rt.Services.Lineups.CacheLineups(ctx, snapshot); err != nil {
						return fmt.Errorf("cache lineups from %s: %w", path, err)
					}
					finished, err := rt.Services.Live.ApplyLiveUpdate(ctx, snapshot)
					if err != nil {
						return fmt.Errorf("apply %s: %w", path, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s fixture=%d status=%s finished=%t\n",
						path, snapshot.FixtureID(), snapshot.Fixture.Status.Short, finished)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&files, "file", nil, "Snapshot JSON file (repeatable, applied in order)")
	return cmd
}
