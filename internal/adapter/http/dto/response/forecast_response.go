package response

import "proposal_forecasting/internal/domain/entities"

type CurrentMonthResponse struct {
	Projected float64 `json:"projected"`
	Actual    float64 `json:"actual"`
}

type NextMonthResponse struct {
	Projected float64 `json:"projected"`
}

type QuarterResponse struct {
	Quarter   string  `json:"quarter"`
	Projected float64 `json:"projected"`
	Actual    float64 `json:"actual"`
}

type TrendResponse struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	Deals       int     `json:"deals"`
	AvgDealSize float64 `json:"avgDealSize"`
}

type ForecastResponse struct {
	CurrentMonth CurrentMonthResponse `json:"currentMonth"`
	NextMonth    NextMonthResponse    `json:"nextMonth"`
	Quarterly    []QuarterResponse    `json:"quarterly"`
	Trends       []TrendResponse      `json:"trends"`
}

func FromForecast(f entities.ForecastResult) ForecastResponse {
	res := ForecastResponse{
		CurrentMonth: CurrentMonthResponse{
			Projected: f.CurrentMonth.Projected,
			Actual:    f.CurrentMonth.Actual,
		},
		NextMonth: NextMonthResponse{Projected: f.NextMonth.Projected},
		Quarterly: make([]QuarterResponse, 0, len(f.Quarterly)),
		Trends:    make([]TrendResponse, 0, len(f.Trends)),
	}
	for _, q := range f.Quarterly {
		res.Quarterly = append(res.Quarterly, QuarterResponse{Quarter: q.Label, Projected: q.Projected, Actual: q.Actual})
	}
	for _, t := range f.Trends {
		res.Trends = append(res.Trends, TrendResponse{
			Month:       t.Label,
			Revenue:     t.Revenue,
			Deals:       t.Deals,
			AvgDealSize: t.AvgDealSize,
		})
	}
	return res
}
