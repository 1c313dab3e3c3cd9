package response

import "proposal_forecasting/internal/domain/entities"

type MemberPerformanceResponse struct {
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	ProposalsSent   int     `json:"proposalsSent"`
	ProposalsWon    int     `json:"proposalsWon"`
	TotalRevenue    float64 `json:"totalRevenue"`
	WinRate         float64 `json:"winRate"`
	AvgDealSize     float64 `json:"avgDealSize"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

type TeamTotalsResponse struct {
	ProposalsSent   int     `json:"proposalsSent"`
	ProposalsWon    int     `json:"proposalsWon"`
	TotalRevenue    float64 `json:"totalRevenue"`
	WinRate         float64 `json:"winRate"`
	AvgDealSize     float64 `json:"avgDealSize"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

type TeamPerformanceResponse struct {
	TeamID  string                      `json:"teamId,omitempty"`
	Members []MemberPerformanceResponse `json:"members"`
	Totals  TeamTotalsResponse          `json:"totals"`
}

func FromTeamPerformance(t entities.TeamPerformanceResult) TeamPerformanceResponse {
	res := TeamPerformanceResponse{
		TeamID:  t.TeamID,
		Members: make([]MemberPerformanceResponse, 0, len(t.Members)),
		Totals: TeamTotalsResponse{
			ProposalsSent:   t.Totals.ProposalsSent,
			ProposalsWon:    t.Totals.ProposalsWon,
			TotalRevenue:    t.Totals.TotalRevenue,
			WinRate:         t.Totals.WinRate,
			AvgDealSize:     t.Totals.AvgDealSize,
			AvgResponseTime: t.Totals.AvgResponseTime,
		},
	}
	for _, m := range t.Members {
		res.Members = append(res.Members, MemberPerformanceResponse{
			UserID:          m.UserID,
			Name:            m.Name,
			ProposalsSent:   m.ProposalsSent,
			ProposalsWon:    m.ProposalsWon,
			TotalRevenue:    m.TotalRevenue,
			WinRate:         m.WinRate,
			AvgDealSize:     m.AvgDealSize,
			AvgResponseTime: m.AvgResponseTime,
		})
	}
	return res
}
