package usecase

import (
	"context"
	"errors"
	"log"
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPipelineStageNotFound   = errors.New("pipeline stage not found")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrInvalidStageID          = errors.New("invalid pipeline stage id")
	ErrInvalidStageName        = errors.New("invalid pipeline stage name")
	ErrInvalidStageProbability = errors.New("invalid pipeline stage probability")
	ErrInvalidStageOrder       = errors.New("invalid pipeline stage order")
)

var errStageRepositoryNotWired = errors.New("pipeline stage repository not configured")

const defaultStageColor = "#6B7280"

// CreatePipelineStageInput is the command accepted by CreateStage. A nil Order appends
// the stage after the user's last one.
type CreatePipelineStageInput struct {
	Name        string
	Order       *int
	Probability int
	Color       string
}

// IPipelineStageUseCase exposes pipeline stage management. Every mutation is scoped to
// the calling user: a stage owned by somebody else behaves as if it did not exist.
//
//go:generate mockgen -source=pipeline_stage_usecase.go -destination=../adapter/http/handlers/mocks/mock_pipeline_stage_usecase.go -package=mocks

type IPipelineStageUseCase interface {
	ListStages(ctx context.Context, userID string) ([]entities.PipelineStage, error)
	CreateStage(ctx context.Context, userID string, in CreatePipelineStageInput) (entities.PipelineStage, error)
	UpdateStage(ctx context.Context, userID, stageID string, u entities.PipelineStageUpdate) (entities.PipelineStage, error)
	DeleteStage(ctx context.Context, userID, stageID string) error
	InitializeDefaultStages(ctx context.Context, userID string) ([]entities.PipelineStage, error)
}

type PipelineStageUseCase struct {
	repo interfaces.IPipelineStageRepository
	now  func() time.Time
}

var _ IPipelineStageUseCase = (*PipelineStageUseCase)(nil)

func NewPipelineStageUseCase(repo interfaces.IPipelineStageRepository) *PipelineStageUseCase {
	return &PipelineStageUseCase{repo: repo, now: utcNow}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (u *PipelineStageUseCase) ListStages(ctx context.Context, userID string) ([]entities.PipelineStage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *PipelineStageUseCase) CreateStage(ctx context.Context, userID string, in CreatePipelineStageInput) (entities.PipelineStage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PipelineStage{}, ErrInvalidUserID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.PipelineStage{}, ErrInvalidStageName
	}
	if !validProbability(in.Probability) {
		return entities.PipelineStage{}, ErrInvalidStageProbability
	}
	if in.Order != nil && *in.Order < 0 {
		return entities.PipelineStage{}, ErrInvalidStageOrder
	}

	order := 0
	if in.Order != nil {
		order = *in.Order
	} else {
		existing, err := u.repo.ListByUserID(ctx, userID)
		if err != nil {
			return entities.PipelineStage{}, err
		}
		for _, s := range existing {
			if s.Order >= order {
				order = s.Order + 1
			}
		}
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = defaultStageColor
	}

	now := u.now()
	s := entities.PipelineStage{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Order:       order,
		Probability: in.Probability,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.PipelineStage{}, err
	}
	log.Printf("[pipeline][usecase] stage created user_id=%s stage_id=%s name=%q", userID, created.ID, created.Name)
	return created, nil
}

func (u *PipelineStageUseCase) UpdateStage(ctx context.Context, userID, stageID string, upd entities.PipelineStageUpdate) (entities.PipelineStage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PipelineStage{}, ErrInvalidUserID
	}
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return entities.PipelineStage{}, ErrInvalidStageID
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return entities.PipelineStage{}, ErrInvalidStageName
		}
		upd.Name = &name
	}
	if upd.Probability != nil && !validProbability(*upd.Probability) {
		return entities.PipelineStage{}, ErrInvalidStageProbability
	}
	if upd.Order != nil && *upd.Order < 0 {
		return entities.PipelineStage{}, ErrInvalidStageOrder
	}

	current, err := u.ownedStage(ctx, userID, stageID)
	if err != nil {
		return entities.PipelineStage{}, err
	}
	if upd.IsEmpty() {
		return current, nil
	}

	updated, err := u.repo.Update(ctx, stageID, upd)
	if err != nil {
		return entities.PipelineStage{}, err
	}
	if updated.ID == "" {
		return entities.PipelineStage{}, ErrPipelineStageNotFound
	}
	log.Printf("[pipeline][usecase] stage updated user_id=%s stage_id=%s", userID, stageID)
	return updated, nil
}

func (u *PipelineStageUseCase) DeleteStage(ctx context.Context, userID, stageID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return ErrInvalidStageID
	}

	if _, err := u.ownedStage(ctx, userID, stageID); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, stageID); err != nil {
		return err
	}
	log.Printf("[pipeline][usecase] stage deleted user_id=%s stage_id=%s", userID, stageID)
	return nil
}

// InitializeDefaultStages provisions the default stages for a user that has none and
// returns the user's stages. Users that already have stages are left untouched.
func (u *PipelineStageUseCase) InitializeDefaultStages(ctx context.Context, userID string) ([]entities.PipelineStage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return loadOrInitializeStages(ctx, u.repo, userID, u.now())
}

func (u *PipelineStageUseCase) ownedStage(ctx context.Context, userID, stageID string) (entities.PipelineStage, error) {
	s, err := u.repo.GetByID(ctx, stageID)
	if err != nil {
		return entities.PipelineStage{}, err
	}
	if s.ID == "" || s.UserID != userID {
		return entities.PipelineStage{}, ErrPipelineStageNotFound
	}
	return s, nil
}

func validProbability(p int) bool {
	return p >= 0 && p <= 100
}

// loadOrInitializeStages returns the user's stages, creating the defaults first when
// the user has none. Default stages have deterministic ids and are written with
// CreateIfAbsent, so concurrent first-use calls settle on a single set.
func loadOrInitializeStages(ctx context.Context, repo interfaces.IPipelineStageRepository, userID string, now time.Time) ([]entities.PipelineStage, error) {
	if repo == nil {
		return nil, errStageRepositoryNotWired
	}
	stages, err := repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(stages) > 0 {
		return stages, nil
	}

	defaults := entities.DefaultPipelineStages(userID, now)
	created := 0
	for _, s := range defaults {
		ok, err := repo.CreateIfAbsent(ctx, s)
		if err != nil {
			log.Printf("[pipeline][usecase] default stage create failed user_id=%s name=%q err=%v", userID, s.Name, err)
			return nil, err
		}
		if ok {
			created++
		}
	}
	log.Printf("[pipeline][usecase] default stages initialized user_id=%s created=%d", userID, created)

	return repo.ListByUserID(ctx, userID)
}
