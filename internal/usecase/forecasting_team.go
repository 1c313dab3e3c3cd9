package usecase

import (
	"context"
	"log"
	"proposal_forecasting/internal/domain/entities"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type memberTally struct {
	userID        string
	name          string
	sent          int
	won           int
	revenue       float64
	responseTime  time.Duration
	responseCount int
}

func (t *memberTally) add(p entities.Proposal) {
	if p.SentAt != nil {
		t.sent++
		if p.FirstViewedAt != nil {
			t.responseTime += p.FirstViewedAt.Sub(*p.SentAt)
			t.responseCount++
		}
	}
	if p.Status == entities.ProposalStatusApproved {
		t.won++
		t.revenue += p.Value()
	}
}

func (t memberTally) avgDealSize() float64 {
	if t.won == 0 {
		return 0
	}
	return t.revenue / float64(t.won)
}

func (t memberTally) member() entities.MemberPerformance {
	return entities.MemberPerformance{
		UserID:          t.userID,
		Name:            t.name,
		ProposalsSent:   t.sent,
		ProposalsWon:    t.won,
		TotalRevenue:    t.revenue,
		WinRate:         percent(t.won, t.sent),
		AvgDealSize:     t.avgDealSize(),
		AvgResponseTime: meanHours(t.responseTime, t.responseCount),
	}
}

// GetTeamPerformance aggregates send/win activity per member. Members default to the
// caller; totals are recomputed from the summed counters so a single-member team reports
// the member's own figures.
func (u *ForecastingUseCase) GetTeamPerformance(ctx context.Context, q TeamPerformanceQuery) (entities.TeamPerformanceResult, error) {
	userID, err := normalizeUserID(q.UserID)
	if err != nil {
		return entities.TeamPerformanceResult{}, err
	}
	memberIDs := teamMemberIDs(userID, q.MemberIDs)

	tallies := make([]memberTally, len(memberIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range memberIDs {
		g.Go(func() error {
			t, err := u.tallyMember(gctx, id)
			if err != nil {
				return err
			}
			tallies[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[forecast][team] aggregation failed user_id=%s team_id=%s err=%v", userID, q.TeamID, err)
		return entities.TeamPerformanceResult{}, err
	}

	result := entities.TeamPerformanceResult{
		TeamID:  strings.TrimSpace(q.TeamID),
		Members: make([]entities.MemberPerformance, 0, len(tallies)),
	}
	total := memberTally{}
	for _, t := range tallies {
		result.Members = append(result.Members, t.member())
		total.sent += t.sent
		total.won += t.won
		total.revenue += t.revenue
		total.responseTime += t.responseTime
		total.responseCount += t.responseCount
	}
	sum := total.member()
	result.Totals = entities.TeamTotals{
		ProposalsSent:   sum.ProposalsSent,
		ProposalsWon:    sum.ProposalsWon,
		TotalRevenue:    sum.TotalRevenue,
		WinRate:         sum.WinRate,
		AvgDealSize:     sum.AvgDealSize,
		AvgResponseTime: sum.AvgResponseTime,
	}
	return result, nil
}

func (u *ForecastingUseCase) tallyMember(ctx context.Context, userID string) (memberTally, error) {
	proposals, err := u.findProposals(ctx, entities.ProposalFilter{UserID: userID})
	if err != nil {
		return memberTally{}, err
	}

	t := memberTally{userID: userID, name: entities.UnknownUserName}
	if u.users != nil {
		user, err := u.users.GetByID(ctx, userID)
		if err != nil {
			return memberTally{}, err
		}
		if user.ID != "" {
			t.name = user.DisplayName()
		}
	}

	for _, p := range proposals {
		t.add(p)
	}
	return t, nil
}

// teamMemberIDs returns the trimmed, de-duplicated member ids, or the caller alone.
func teamMemberIDs(userID string, requested []string) []string {
	seen := make(map[string]struct{}, len(requested))
	ids := make([]string, 0, len(requested))
	for _, id := range requested {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []string{userID}
	}
	return ids
}
