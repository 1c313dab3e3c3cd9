package main

import (
	"context"

	"proposal_forecasting/internal/adapter/http/dto/response"
	"proposal_forecasting/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	flagTeam    string
	flagMembers []string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Print the weighted pipeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			snapshot, err := a.forecasting.GetPipeline(ctx, flagUser)
			if err != nil {
				return nil, err
			}
			return response.FromPipelineSnapshot(snapshot), nil
		})
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Print the revenue forecast",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			forecast, err := a.forecasting.GetForecast(ctx, flagUser)
			if err != nil {
				return nil, err
			}
			return response.FromForecast(forecast), nil
		})
	},
}

var winRateCmd = &cobra.Command{
	Use:   "win-rate",
	Short: "Print the win-rate analysis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			winRate, err := a.forecasting.GetWinRate(ctx, flagUser)
			if err != nil {
				return nil, err
			}
			return response.FromWinRate(winRate), nil
		})
	},
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Print team performance",
	Long:  "Aggregates every --member, or the --user alone when no member is given.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) (any, error) {
			team, err := a.forecasting.GetTeamPerformance(ctx, usecase.TeamPerformanceQuery{
				UserID:    flagUser,
				TeamID:    flagTeam,
				MemberIDs: flagMembers,
			})
			if err != nil {
				return nil, err
			}
			return response.FromTeamPerformance(team), nil
		})
	},
}

func init() {
	teamCmd.Flags().StringVar(&flagTeam, "team", "", "Team id echoed in the report")
	teamCmd.Flags().StringSliceVar(&flagMembers, "member", nil, "Member user id (repeatable)")

	rootCmd.AddCommand(pipelineCmd, forecastCmd, winRateCmd, teamCmd)
}
