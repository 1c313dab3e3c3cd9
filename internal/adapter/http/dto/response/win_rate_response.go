package response

import "proposal_forecasting/internal/domain/entities"

type MonthlyWinRateResponse struct {
	Month string  `json:"month"`
	Rate  float64 `json:"rate"`
	Deals int     `json:"deals"`
}

type ValueRangeWinRateResponse struct {
	Range string  `json:"range"`
	Rate  float64 `json:"rate"`
	Deals int     `json:"deals"`
}

type IndustryWinRateResponse struct {
	Industry string  `json:"industry"`
	Rate     float64 `json:"rate"`
	Deals    int     `json:"deals"`
}

type WinRateResponse struct {
	Overall        float64                     `json:"overall"`
	ByMonth        []MonthlyWinRateResponse    `json:"byMonth"`
	ByValue        []ValueRangeWinRateResponse `json:"byValue"`
	ByIndustry     []IndustryWinRateResponse   `json:"byIndustry"`
	AvgTimeToClose float64                     `json:"avgTimeToClose"`
}

func FromWinRate(w entities.WinRateResult) WinRateResponse {
	res := WinRateResponse{
		Overall:        w.Overall,
		ByMonth:        make([]MonthlyWinRateResponse, 0, len(w.ByMonth)),
		ByValue:        make([]ValueRangeWinRateResponse, 0, len(w.ByValue)),
		ByIndustry:     make([]IndustryWinRateResponse, 0, len(w.ByIndustry)),
		AvgTimeToClose: w.AvgTimeToClose,
	}
	for _, m := range w.ByMonth {
		res.ByMonth = append(res.ByMonth, MonthlyWinRateResponse{Month: m.Label, Rate: m.Rate, Deals: m.Deals})
	}
	for _, v := range w.ByValue {
		res.ByValue = append(res.ByValue, ValueRangeWinRateResponse{Range: v.Label, Rate: v.Rate, Deals: v.Deals})
	}
	for _, i := range w.ByIndustry {
		res.ByIndustry = append(res.ByIndustry, IndustryWinRateResponse{Industry: i.Industry, Rate: i.Rate, Deals: i.Deals})
	}
	return res
}
