package usecase

import (
	"context"
	"errors"
	"math"
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"
	"strings"
	"time"
)

// Confidence weights applied to open proposals by the revenue forecast.
const (
	currentMonthOpenWeight = 0.5
	nextMonthOpenWeight    = 0.3
)

const (
	trailingQuarters = 4
	trailingMonths   = 12
	monthLabelLayout = "Jan 2006"
	monthKeyLayout   = "2006-01"
)

var errProposalRepositoryNotWired = errors.New("proposal repository not configured")

// TeamPerformanceQuery selects the members aggregated by GetTeamPerformance. An empty
// MemberIDs aggregates the caller alone. Membership is not checked, so only trusted callers
// (the operator CLI) set MemberIDs. TeamID is echoed back and not used for lookup yet.
type TeamPerformanceQuery struct {
	UserID    string
	TeamID    string
	MemberIDs []string
}

// IForecastingUseCase computes the sales analytics of a user. Every call reads fresh data
// from the record store; nothing is cached between calls.
//
//go:generate mockgen -source=forecasting_usecase.go -destination=../adapter/http/handlers/mocks/mock_forecasting_usecase.go -package=mocks

type IForecastingUseCase interface {
	GetPipeline(ctx context.Context, userID string) (entities.PipelineSnapshot, error)
	GetForecast(ctx context.Context, userID string) (entities.ForecastResult, error)
	GetWinRate(ctx context.Context, userID string) (entities.WinRateResult, error)
	GetTeamPerformance(ctx context.Context, q TeamPerformanceQuery) (entities.TeamPerformanceResult, error)
}

type ForecastingUseCase struct {
	proposals interfaces.IProposalRepository
	stages    interfaces.IPipelineStageRepository
	users     interfaces.IUserRepository
	loc       *time.Location
	now       func() time.Time
}

var _ IForecastingUseCase = (*ForecastingUseCase)(nil)

// NewForecastingUseCase wires the analytics use case. Calendar windows (months, quarters)
// are computed in loc; a nil loc means UTC.
func NewForecastingUseCase(
	proposals interfaces.IProposalRepository,
	stages interfaces.IPipelineStageRepository,
	users interfaces.IUserRepository,
	loc *time.Location,
) *ForecastingUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ForecastingUseCase{
		proposals: proposals,
		stages:    stages,
		users:     users,
		loc:       loc,
		now:       utcNow,
	}
}

// WithClock replaces the time source. Used by tests and by the CLI's --as-of flag.
func (u *ForecastingUseCase) WithClock(now func() time.Time) *ForecastingUseCase {
	u.now = now
	return u
}

func (u *ForecastingUseCase) localNow() time.Time {
	return u.now().In(u.loc)
}

func (u *ForecastingUseCase) findProposals(ctx context.Context, f entities.ProposalFilter) ([]entities.Proposal, error) {
	if u.proposals == nil {
		return nil, errProposalRepositoryNotWired
	}
	return u.proposals.Find(ctx, f)
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUserID
	}
	return userID, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func quarterStart(t time.Time) time.Time {
	firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, t.Location())
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func meanHours(total time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(total.Hours() / float64(n))
}
