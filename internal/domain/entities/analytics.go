package entities

import "time"

// The types below are derived per request from proposals and stages. They are never
// persisted.

type PipelineStageSummary struct {
	Stage         PipelineStage
	ProposalCount int
	TotalValue    float64
	WeightedValue float64
}

type PipelineSnapshot struct {
	Stages           []PipelineStageSummary
	TotalPipeline    float64
	WeightedPipeline float64
}

type MonthProjection struct {
	Projected float64
	Actual    float64
}

type QuarterForecast struct {
	Label     string
	Start     time.Time
	Projected float64
	Actual    float64
}

type MonthlyTrend struct {
	Label       string
	Month       time.Time
	Revenue     float64
	Deals       int
	AvgDealSize float64
}

// ForecastResult holds the revenue projections. NextMonth only carries Projected.
type ForecastResult struct {
	CurrentMonth MonthProjection
	NextMonth    MonthProjection
	Quarterly    []QuarterForecast
	Trends       []MonthlyTrend
}

type MonthlyWinRate struct {
	Label string
	Month time.Time
	Rate  float64
	Deals int
}

// ValueRangeWinRate covers proposals valued in [Min, Max). Max is nil for the open-ended
// top range.
type ValueRangeWinRate struct {
	Label string
	Min   float64
	Max   *float64
	Rate  float64
	Deals int
}

type IndustryWinRate struct {
	Industry string
	Rate     float64
	Deals    int
}

type WinRateResult struct {
	Overall    float64
	ByMonth    []MonthlyWinRate
	ByValue    []ValueRangeWinRate
	ByIndustry []IndustryWinRate
	// AvgTimeToClose is in whole hours.
	AvgTimeToClose float64
}

type MemberPerformance struct {
	UserID          string
	Name            string
	ProposalsSent   int
	ProposalsWon    int
	TotalRevenue    float64
	WinRate         float64
	AvgDealSize     float64
	AvgResponseTime float64
}

type TeamTotals struct {
	ProposalsSent   int
	ProposalsWon    int
	TotalRevenue    float64
	WinRate         float64
	AvgDealSize     float64
	AvgResponseTime float64
}

type TeamPerformanceResult struct {
	TeamID  string
	Members []MemberPerformance
	Totals  TeamTotals
}
