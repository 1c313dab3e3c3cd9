package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stageColumns = `id, user_id, name, stage_order, probability, color, created_at, updated_at`

type PipelineStageRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPipelineStageRepository = (*PipelineStageRepository)(nil)

func NewPipelineStageRepository(pool *pgxpool.Pool) *PipelineStageRepository {
	return &PipelineStageRepository{pool: pool}
}

func (r *PipelineStageRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PipelineStage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+stageColumns+` FROM pipeline_stages WHERE user_id = $1 ORDER BY stage_order, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline stages: %w", err)
	}
	defer rows.Close()

	stages := make([]entities.PipelineStage, 0)
	for rows.Next() {
		s, err := scanStage(rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pipeline stages: %w", err)
	}
	return stages, nil
}

func (r *PipelineStageRepository) GetByID(ctx context.Context, id string) (entities.PipelineStage, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+stageColumns+` FROM pipeline_stages WHERE id = $1`, id)
	s, err := scanStage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PipelineStage{}, nil
	}
	return s, err
}

func (r *PipelineStageRepository) Create(ctx context.Context, s entities.PipelineStage) (entities.PipelineStage, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pipeline_stages (`+stageColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.UserID, s.Name, s.Order, s.Probability, s.Color, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return entities.PipelineStage{}, fmt.Errorf("failed to create pipeline stage: %w", err)
	}
	return s, nil
}

func (r *PipelineStageRepository) CreateIfAbsent(ctx context.Context, s entities.PipelineStage) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO pipeline_stages (`+stageColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		s.ID, s.UserID, s.Name, s.Order, s.Probability, s.Color, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create pipeline stage: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PipelineStageRepository) Update(ctx context.Context, id string, u entities.PipelineStageUpdate) (entities.PipelineStage, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE pipeline_stages SET
			name        = COALESCE($2, name),
			stage_order = COALESCE($3, stage_order),
			probability = COALESCE($4, probability),
			color       = COALESCE($5, color),
			updated_at  = $6
		WHERE id = $1
		RETURNING `+stageColumns,
		id, u.Name, u.Order, u.Probability, u.Color, time.Now().UTC(),
	)
	s, err := scanStage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PipelineStage{}, nil
	}
	return s, err
}

func (r *PipelineStageRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM pipeline_stages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete pipeline stage: %w", err)
	}
	return nil
}

func scanStage(row pgx.Row) (entities.PipelineStage, error) {
	var s entities.PipelineStage
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Order, &s.Probability, &s.Color, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PipelineStage{}, err
		}
		return entities.PipelineStage{}, fmt.Errorf("failed to scan pipeline stage: %w", err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
