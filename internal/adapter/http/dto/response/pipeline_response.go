package response

import "proposal_forecasting/internal/domain/entities"

type PipelineStageSummaryResponse struct {
	PipelineStageResponse
	ProposalCount int     `json:"proposalCount"`
	TotalValue    float64 `json:"totalValue"`
	WeightedValue float64 `json:"weightedValue"`
}

type PipelineResponse struct {
	Stages           []PipelineStageSummaryResponse `json:"stages"`
	TotalPipeline    float64                        `json:"totalPipeline"`
	WeightedPipeline float64                        `json:"weightedPipeline"`
}

func FromPipelineSnapshot(s entities.PipelineSnapshot) PipelineResponse {
	res := PipelineResponse{
		Stages:           make([]PipelineStageSummaryResponse, 0, len(s.Stages)),
		TotalPipeline:    s.TotalPipeline,
		WeightedPipeline: s.WeightedPipeline,
	}
	for _, st := range s.Stages {
		res.Stages = append(res.Stages, PipelineStageSummaryResponse{
			PipelineStageResponse: FromPipelineStage(st.Stage),
			ProposalCount:         st.ProposalCount,
			TotalValue:            st.TotalValue,
			WeightedValue:         st.WeightedValue,
		})
	}
	return res
}
