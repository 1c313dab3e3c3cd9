package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const proposalColumns = `id, user_id, title, status, created_at, sent_at, first_viewed_at,
	approved_at, declined_at, estimated_value, tax_rate, blocks, pipeline_stage_id`

var errProposalFilterWithoutUser = errors.New("proposal filter requires a user id")

// timestampColumns whitelists the columns a filter may reference.
var timestampColumns = map[entities.TimestampField]string{
	entities.FieldCreatedAt:     "created_at",
	entities.FieldSentAt:        "sent_at",
	entities.FieldFirstViewedAt: "first_viewed_at",
	entities.FieldApprovedAt:    "approved_at",
	entities.FieldDeclinedAt:    "declined_at",
}

type ProposalRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IProposalRepository = (*ProposalRepository)(nil)

func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

func (r *ProposalRepository) Find(ctx context.Context, f entities.ProposalFilter) ([]entities.Proposal, error) {
	query, args, err := buildFindQuery(f)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	proposals := make([]entities.Proposal, 0)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	return proposals, nil
}

// Put upserts a proposal. Only used to seed local databases.
func (r *ProposalRepository) Put(ctx context.Context, p entities.Proposal) error {
	blocks, err := json.Marshal(nonNilBlocks(p.Blocks))
	if err != nil {
		return fmt.Errorf("failed to marshal proposal blocks: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO proposals (`+proposalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			title = EXCLUDED.title,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			sent_at = EXCLUDED.sent_at,
			first_viewed_at = EXCLUDED.first_viewed_at,
			approved_at = EXCLUDED.approved_at,
			declined_at = EXCLUDED.declined_at,
			estimated_value = EXCLUDED.estimated_value,
			tax_rate = EXCLUDED.tax_rate,
			blocks = EXCLUDED.blocks,
			pipeline_stage_id = EXCLUDED.pipeline_stage_id`,
		p.ID, p.UserID, p.Title, string(p.Status), p.CreatedAt, p.SentAt, p.FirstViewedAt,
		p.ApprovedAt, p.DeclinedAt, p.EstimatedValue, p.TaxRate, blocks, p.PipelineStageID,
	)
	if err != nil {
		return fmt.Errorf("failed to save proposal: %w", err)
	}
	return nil
}

func buildFindQuery(f entities.ProposalFilter) (string, []any, error) {
	if f.UserID == "" {
		return "", nil, errProposalFilterWithoutUser
	}

	args := []any{f.UserID}
	where := []string{"user_id = $1"}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, "status = ANY("+arg(statuses)+")")
	}

	ranges := []struct {
		column string
		r      *entities.TimeRange
	}{
		{"created_at", f.CreatedBetween},
		{"sent_at", f.SentBetween},
		{"approved_at", f.ApprovedBetween},
	}
	for _, rg := range ranges {
		if rg.r == nil {
			continue
		}
		where = append(where, rg.column+" >= "+arg(rg.r.From), rg.column+" < "+arg(rg.r.To))
	}

	for _, field := range f.NotNull {
		column, ok := timestampColumns[field]
		if !ok {
			return "", nil, fmt.Errorf("unknown proposal timestamp %q", field)
		}
		where = append(where, column+" IS NOT NULL")
	}

	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at, id`
	return query, args, nil
}

func scanProposal(row pgx.Row) (entities.Proposal, error) {
	var (
		p      entities.Proposal
		status string
		blocks []byte
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &status, &p.CreatedAt, &p.SentAt, &p.FirstViewedAt,
		&p.ApprovedAt, &p.DeclinedAt, &p.EstimatedValue, &p.TaxRate, &blocks, &p.PipelineStageID)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to scan proposal: %w", err)
	}
	p.Status = entities.ProposalStatus(status)
	if len(blocks) > 0 {
		if err := json.Unmarshal(blocks, &p.Blocks); err != nil {
			return entities.Proposal{}, fmt.Errorf("failed to decode blocks of proposal %s: %w", p.ID, err)
		}
	}
	return p, nil
}

func nonNilBlocks(blocks []entities.Block) []entities.Block {
	if blocks == nil {
		return []entities.Block{}
	}
	return blocks
}
