package response

import (
	"proposal_forecasting/internal/domain/entities"
	"time"
)

type PipelineStageResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Order       int       `json:"order"`
	Probability int       `json:"probability"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromPipelineStage(s entities.PipelineStage) PipelineStageResponse {
	return PipelineStageResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Order:       s.Order,
		Probability: s.Probability,
		Color:       s.Color,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromPipelineStages(stages []entities.PipelineStage) []PipelineStageResponse {
	out := make([]PipelineStageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, FromPipelineStage(s))
	}
	return out
}
