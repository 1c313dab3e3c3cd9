package usecase

import (
	"context"
	"log"
	"proposal_forecasting/internal/domain/entities"
	"sort"
	"time"
)

type valueRange struct {
	label string
	min   float64
	max   float64 // 0 means unbounded
}

// Left-inclusive, right-exclusive.
var winRateValueRanges = []valueRange{
	{label: "$0-1k", min: 0, max: 1000},
	{label: "$1k-5k", min: 1000, max: 5000},
	{label: "$5k-10k", min: 5000, max: 10000},
	{label: "$10k-25k", min: 10000, max: 25000},
	{label: "$25k+", min: 25000},
}

func (r valueRange) contains(v float64) bool {
	return v >= r.min && (r.max == 0 || v < r.max)
}

// GetWinRate analyses decided proposals: those approved or declined after being sent.
// Proposals that were never sent are left out entirely.
func (u *ForecastingUseCase) GetWinRate(ctx context.Context, userID string) (entities.WinRateResult, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.WinRateResult{}, err
	}

	decided, err := u.findProposals(ctx, entities.ProposalFilter{
		UserID:   userID,
		Statuses: []entities.ProposalStatus{entities.ProposalStatusApproved, entities.ProposalStatusDeclined},
		NotNull:  []entities.TimestampField{entities.FieldSentAt},
	})
	if err != nil {
		log.Printf("[forecast][win-rate] proposal load failed user_id=%s err=%v", userID, err)
		return entities.WinRateResult{}, err
	}

	return buildWinRate(decided, u.loc), nil
}

type rateCounter struct {
	won   int
	total int
}

func (c *rateCounter) add(p entities.Proposal) {
	c.total++
	if p.Status == entities.ProposalStatusApproved {
		c.won++
	}
}

func (c rateCounter) rate() float64 {
	return percent(c.won, c.total)
}

func buildWinRate(decided []entities.Proposal, loc *time.Location) entities.WinRateResult {
	var overall rateCounter
	months := make(map[string]*rateCounter)
	monthStarts := make(map[string]time.Time)
	ranges := make([]rateCounter, len(winRateValueRanges))

	var closeTime time.Duration
	closed := 0

	for _, p := range decided {
		// The store filter already guarantees this; in-memory callers may not.
		if p.SentAt == nil {
			continue
		}
		if p.Status != entities.ProposalStatusApproved && p.Status != entities.ProposalStatusDeclined {
			continue
		}
		overall.add(p)

		m := monthStart(p.DecidedAt().In(loc))
		key := m.Format(monthKeyLayout)
		c, ok := months[key]
		if !ok {
			c = &rateCounter{}
			months[key] = c
			monthStarts[key] = m
		}
		c.add(p)

		v := p.Value()
		for i, r := range winRateValueRanges {
			if r.contains(v) {
				ranges[i].add(p)
				break
			}
		}

		if p.Status == entities.ProposalStatusApproved && p.ApprovedAt != nil {
			closeTime += p.ApprovedAt.Sub(*p.SentAt)
			closed++
		}
	}

	byMonth := make([]entities.MonthlyWinRate, 0, len(months))
	for key, c := range months {
		m := monthStarts[key]
		byMonth = append(byMonth, entities.MonthlyWinRate{
			Label: m.Format(monthLabelLayout),
			Month: m,
			Rate:  c.rate(),
			Deals: c.total,
		})
	}
	sort.Slice(byMonth, func(i, j int) bool {
		return byMonth[i].Month.Before(byMonth[j].Month)
	})

	byValue := make([]entities.ValueRangeWinRate, len(winRateValueRanges))
	for i, r := range winRateValueRanges {
		byValue[i] = entities.ValueRangeWinRate{
			Label: r.label,
			Min:   r.min,
			Rate:  ranges[i].rate(),
			Deals: ranges[i].total,
		}
		if r.max > 0 {
			upper := r.max
			byValue[i].Max = &upper
		}
	}

	return entities.WinRateResult{
		Overall:        roundTo(overall.rate(), 2),
		ByMonth:        byMonth,
		ByValue:        byValue,
		ByIndustry:     []entities.IndustryWinRate{},
		AvgTimeToClose: meanHours(closeTime, closed),
	}
}
