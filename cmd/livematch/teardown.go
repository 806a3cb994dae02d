package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/livematch/internal/app"
	"github.com/spf13/cobra"
)

func teardownCmd() *cobra.Command {
	var fixtureID int64
	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete the fixture-scoped live state of one fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixtureID <= 0 {
				return fmt.Errorf("--fixture must be greater than zero")
			}
			return withRuntime(func(ctx context.Context, rt *app.Runtime) error {
				if err := rt.Services.Live.TeardownLiveState(ctx, fixtureID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "fixture=%d live state removed\n", fixtureID)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&fixtureID, "fixture", 0, "Fixture id")
	return cmd
}
