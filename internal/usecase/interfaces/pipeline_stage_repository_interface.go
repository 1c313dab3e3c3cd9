package interfaces

import (
	"context"
	"proposal_forecasting/internal/domain/entities"
)

// IPipelineStageRepository abstracts persistence of user-owned pipeline stages.
//
// Lookups return a zero-valued stage (empty ID) when nothing matches; callers decide
// whether that is an error.
//
//go:generate mockgen -source=pipeline_stage_repository_interface.go -destination=mocks/mock_pipeline_stage_repository.go -package=mock_interfaces

type IPipelineStageRepository interface {
	// ListByUserID returns the user's stages ordered by Order ascending.
	ListByUserID(ctx context.Context, userID string) ([]entities.PipelineStage, error)
	GetByID(ctx context.Context, id string) (entities.PipelineStage, error)
	Create(ctx context.Context, s entities.PipelineStage) (entities.PipelineStage, error)
	// CreateIfAbsent writes the stage unless one with the same ID exists. It reports
	// whether the write happened.
	CreateIfAbsent(ctx context.Context, s entities.PipelineStage) (bool, error)
	Update(ctx context.Context, id string, u entities.PipelineStageUpdate) (entities.PipelineStage, error)
	Delete(ctx context.Context, id string) error
}
