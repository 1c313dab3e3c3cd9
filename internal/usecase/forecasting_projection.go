package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"proposal_forecasting/internal/domain/entities"
	"time"

	"golang.org/x/sync/errgroup"
)

// GetForecast projects revenue for the current and next month and returns the trailing
// quarterly and monthly revenue series, oldest first.
func (u *ForecastingUseCase) GetForecast(ctx context.Context, userID string) (entities.ForecastResult, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.ForecastResult{}, err
	}

	now := u.localNow()
	thisMonth := monthStart(now)
	nextMonth := thisMonth.AddDate(0, 1, 0)
	// The 12-month window always reaches further back than the 4-quarter window.
	historyStart := thisMonth.AddDate(0, -(trailingMonths - 1), 0)

	var approved, open []entities.Proposal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		approved, err = u.findProposals(gctx, entities.ProposalFilter{
			UserID:          userID,
			Statuses:        []entities.ProposalStatus{entities.ProposalStatusApproved},
			ApprovedBetween: &entities.TimeRange{From: historyStart, To: nextMonth},
		})
		return err
	})
	g.Go(func() error {
		var err error
		open, err = u.findProposals(gctx, entities.ProposalFilter{
			UserID:   userID,
			Statuses: entities.OpenProposalStatuses,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[forecast][projection] proposal load failed user_id=%s err=%v", userID, err)
		return entities.ForecastResult{}, err
	}

	return buildForecast(now, approved, open), nil
}

func buildForecast(now time.Time, approved, open []entities.Proposal) entities.ForecastResult {
	thisMonth := monthStart(now)
	currentRange := entities.TimeRange{From: thisMonth, To: thisMonth.AddDate(0, 1, 0)}

	var actual float64
	for _, p := range approved {
		if p.ApprovedAt != nil && currentRange.Contains(p.ApprovedAt.In(now.Location())) {
			actual += p.Value()
		}
	}

	var inFlight, pipeline float64
	for _, p := range open {
		v := p.Value()
		pipeline += v
		if (p.Status == entities.ProposalStatusSent || p.Status == entities.ProposalStatusViewed) &&
			currentRange.Contains(p.CreatedAt.In(now.Location())) {
			inFlight += v
		}
	}

	return entities.ForecastResult{
		CurrentMonth: entities.MonthProjection{
			Projected: math.Round(actual + inFlight*currentMonthOpenWeight),
			Actual:    math.Round(actual),
		},
		NextMonth: entities.MonthProjection{
			Projected: math.Round(pipeline * nextMonthOpenWeight),
		},
		Quarterly: quarterlySeries(now, approved),
		Trends:    monthlyTrends(now, approved),
	}
}

func quarterlySeries(now time.Time, approved []entities.Proposal) []entities.QuarterForecast {
	current := quarterStart(now)
	quarters := make([]entities.QuarterForecast, trailingQuarters)
	for i := range quarters {
		start := current.AddDate(0, -3*(trailingQuarters-1-i), 0)
		quarters[i] = entities.QuarterForecast{
			Label: fmt.Sprintf("Q%d %d", quarterOf(start), start.Year()),
			Start: start,
		}
	}

	for _, p := range approved {
		if p.ApprovedAt == nil {
			continue
		}
		at := p.ApprovedAt.In(now.Location())
		for i := range quarters {
			r := entities.TimeRange{From: quarters[i].Start, To: quarters[i].Start.AddDate(0, 3, 0)}
			if r.Contains(at) {
				quarters[i].Actual += p.Value()
				break
			}
		}
	}

	// Past quarters have no separate projection model.
	for i := range quarters {
		quarters[i].Projected = quarters[i].Actual
	}
	return quarters
}

func monthlyTrends(now time.Time, approved []entities.Proposal) []entities.MonthlyTrend {
	current := monthStart(now)
	trends := make([]entities.MonthlyTrend, trailingMonths)
	index := make(map[string]int, trailingMonths)
	for i := range trends {
		m := current.AddDate(0, -(trailingMonths - 1 - i), 0)
		trends[i] = entities.MonthlyTrend{Label: m.Format(monthLabelLayout), Month: m}
		index[m.Format(monthKeyLayout)] = i
	}

	for _, p := range approved {
		if p.ApprovedAt == nil {
			continue
		}
		i, ok := index[p.ApprovedAt.In(now.Location()).Format(monthKeyLayout)]
		if !ok {
			continue
		}
		trends[i].Revenue += p.Value()
		trends[i].Deals++
	}

	for i := range trends {
		if trends[i].Deals > 0 {
			trends[i].AvgDealSize = trends[i].Revenue / float64(trends[i].Deals)
		}
	}
	return trends
}
