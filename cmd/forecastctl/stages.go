package main

import (
	"context"

	"proposal_forecasting/internal/adapter/http/dto/response"

	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Manage pipeline stages",
}

var stagesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision the default pipeline stages for a user",
	Long:  "Creates the six default stages when the user has none. Running it again changes nothing.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			stages, err := a.stages.InitializeDefaultStages(ctx, flagUser)
			if err != nil {
				return nil, err
			}
			return response.FromPipelineStages(stages), nil
		})
	},
}

var stagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's pipeline stages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			stages, err := a.stages.ListStages(ctx, flagUser)
			if err != nil {
				return nil, err
			}
			return response.FromPipelineStages(stages), nil
		})
	},
}

func init() {
	stagesCmd.AddCommand(stagesInitCmd, stagesListCmd)
	rootCmd.AddCommand(stagesCmd)
}
