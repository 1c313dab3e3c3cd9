package postgres

import (
	"context"
	"errors"
	"fmt"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var u entities.User
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM users WHERE id = $1`, id).Scan(&u.ID, &u.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

// Put upserts a user. Only used to seed local databases.
func (r *UserRepository) Put(ctx context.Context, u entities.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		u.ID, u.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
