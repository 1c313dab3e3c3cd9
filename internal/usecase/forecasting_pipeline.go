package usecase

import (
	"context"
	"log"
	"proposal_forecasting/internal/domain/entities"
)

// GetPipeline groups the user's open proposals into pipeline stages. Users without
// stages get the default set first.
func (u *ForecastingUseCase) GetPipeline(ctx context.Context, userID string) (entities.PipelineSnapshot, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.PipelineSnapshot{}, err
	}

	stages, err := loadOrInitializeStages(ctx, u.stages, userID, u.now())
	if err != nil {
		return entities.PipelineSnapshot{}, err
	}

	proposals, err := u.findProposals(ctx, entities.ProposalFilter{
		UserID:   userID,
		Statuses: entities.OpenProposalStatuses,
	})
	if err != nil {
		log.Printf("[forecast][pipeline] proposal load failed user_id=%s err=%v", userID, err)
		return entities.PipelineSnapshot{}, err
	}

	return buildPipelineSnapshot(stages, proposals), nil
}

func buildPipelineSnapshot(stages []entities.PipelineStage, proposals []entities.Proposal) entities.PipelineSnapshot {
	summaries := make([]entities.PipelineStageSummary, len(stages))
	for i, s := range stages {
		summaries[i].Stage = s
	}

	for _, p := range proposals {
		idx := stageIndexFor(p, stages)
		if idx < 0 {
			continue
		}
		summaries[idx].ProposalCount++
		summaries[idx].TotalValue += p.Value()
	}

	snapshot := entities.PipelineSnapshot{Stages: summaries}
	for i := range summaries {
		summaries[i].WeightedValue = summaries[i].TotalValue * float64(summaries[i].Stage.Probability) / 100
		snapshot.TotalPipeline += summaries[i].TotalValue
		snapshot.WeightedPipeline += summaries[i].WeightedValue
	}
	return snapshot
}

// stageIndexFor returns the index of the stage a proposal belongs to, or -1.
// An explicit stage assignment wins; otherwise the proposal status is mapped to a stage
// name. Stages are scanned in order, so the first one wins when names collide.
func stageIndexFor(p entities.Proposal, stages []entities.PipelineStage) int {
	if p.PipelineStageID != nil {
		for i, s := range stages {
			if s.ID == *p.PipelineStageID {
				return i
			}
		}
	}

	name, ok := entities.StatusStageNames[p.Status]
	if !ok {
		return -1
	}
	for i, s := range stages {
		if s.Name == name {
			return i
		}
	}
	return -1
}
