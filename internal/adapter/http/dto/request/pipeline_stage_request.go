package request

import (
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase"
)

// CreatePipelineStageRequest is the body of POST /pipeline/stages.
type CreatePipelineStageRequest struct {
	Name        string `json:"name" binding:"required"`
	Order       *int   `json:"order" binding:"omitempty,min=0"`
	Probability *int   `json:"probability" binding:"required,min=0,max=100"`
	Color       string `json:"color"`
}

func (r CreatePipelineStageRequest) ToInput() usecase.CreatePipelineStageInput {
	in := usecase.CreatePipelineStageInput{
		Name:  r.Name,
		Order: r.Order,
		Color: r.Color,
	}
	if r.Probability != nil {
		in.Probability = *r.Probability
	}
	return in
}

// UpdatePipelineStageRequest is the body of PATCH /pipeline/stages/:id. Absent fields
// are left untouched.
type UpdatePipelineStageRequest struct {
	Name        *string `json:"name"`
	Order       *int    `json:"order" binding:"omitempty,min=0"`
	Probability *int    `json:"probability" binding:"omitempty,min=0,max=100"`
	Color       *string `json:"color"`
}

func (r UpdatePipelineStageRequest) ToUpdate() entities.PipelineStageUpdate {
	return entities.PipelineStageUpdate{
		Name:        r.Name,
		Order:       r.Order,
		Probability: r.Probability,
		Color:       r.Color,
	}
}
