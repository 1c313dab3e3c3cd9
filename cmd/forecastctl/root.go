package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/infrastructure/config"
	"proposal_forecasting/internal/infrastructure/store"
	"proposal_forecasting/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagAsOf     string
	flagFixtures string
	flagDriver   string
)

var rootCmd = &cobra.Command{
	Use:           "forecastctl",
	Short:         "Proposal forecasting operator CLI",
	Long:          "Provision pipeline stages and print pipeline, forecast and win-rate reports against the configured store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User id the command runs as")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date for reports (YYYY-MM-DD or RFC3339, default now)")
	rootCmd.PersistentFlags().StringVar(&flagFixtures, "fixtures", "", "JSON file with users and proposals to load before running")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "store", "", "Override STORE_DRIVER (dynamodb|postgres|memory)")
}

// app is what every command needs: the opened store and the use cases built on it.
type app struct {
	repos       *store.Repositories
	stages      *usecase.PipelineStageUseCase
	forecasting *usecase.ForecastingUseCase
}

func newApp(ctx context.Context) (*app, error) {
	if flagDriver != "" {
		os.Setenv("STORE_DRIVER", flagDriver)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	repos, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if flagFixtures != "" {
		if err := loadFixtures(ctx, repos, flagFixtures); err != nil {
			repos.Close()
			return nil, err
		}
	}

	forecasting := usecase.NewForecastingUseCase(repos.Proposals, repos.Stages, repos.Users, cfg.Location)
	if flagAsOf != "" {
		asOf, err := parseAsOf(flagAsOf, cfg.Location)
		if err != nil {
			repos.Close()
			return nil, err
		}
		forecasting.WithClock(func() time.Time { return asOf })
	}

	return &app{
		repos:       repos,
		stages:      usecase.NewPipelineStageUseCase(repos.Stages),
		forecasting: forecasting,
	}, nil
}

func (a *app) Close() {
	a.repos.Close()
}

// withApp runs fn with an opened app, closing it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) (any, error)) error {
	if strings.TrimSpace(flagUser) == "" {
		return fmt.Errorf("--user is required")
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

type fixtures struct {
	Users     []entities.User     `json:"users"`
	Proposals []entities.Proposal `json:"proposals"`
}

func loadFixtures(ctx context.Context, repos *store.Repositories, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f fixtures
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	return repos.Seed(ctx, f.Users, f.Proposals)
}

func parseAsOf(v string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", v, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD or RFC3339", v)
	}
	return t, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
