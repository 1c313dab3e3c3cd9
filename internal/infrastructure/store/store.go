// Package store opens the record store selected by STORE_DRIVER and exposes it through
// the repository ports.
package store

import (
	"context"
	"fmt"
	"log"

	"proposal_forecasting/internal/adapter/persistence/memory"
	"proposal_forecasting/internal/adapter/persistence/postgres"
	"proposal_forecasting/internal/adapter/persistence/repository"
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/infrastructure/config"
	"proposal_forecasting/internal/infrastructure/database"
	"proposal_forecasting/internal/usecase/interfaces"
)

type Repositories struct {
	Stages    interfaces.IPipelineStageRepository
	Proposals interfaces.IProposalRepository
	Users     interfaces.IUserRepository

	putProposal func(ctx context.Context, p entities.Proposal) error
	putUser     func(ctx context.Context, u entities.User) error
	close       func()
}

// Open connects to the configured store.
func Open(ctx context.Context, cfg config.Config) (*Repositories, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemory(memory.NewStore()), nil

	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx)
		if err != nil {
			return nil, err
		}
		if cfg.CreateSchema {
			if err := postgres.CreateSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		proposals := postgres.NewProposalRepository(pool)
		users := postgres.NewUserRepository(pool)
		log.Printf("[store] using postgres")
		return &Repositories{
			Stages:      postgres.NewPipelineStageRepository(pool),
			Proposals:   proposals,
			Users:       users,
			putProposal: proposals.Put,
			putUser:     users.Put,
			close:       pool.Close,
		}, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		proposals := repository.NewProposalDynamoRepository(ddb)
		users := repository.NewUserDynamoRepository(ddb)
		log.Printf("[store] using dynamodb")
		return &Repositories{
			Stages:      repository.NewPipelineStageDynamoRepository(ddb),
			Proposals:   proposals,
			Users:       users,
			putProposal: proposals.Put,
			putUser:     users.Put,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

// NewMemory wraps an in-process store.
func NewMemory(s *memory.Store) *Repositories {
	return &Repositories{
		Stages:    s,
		Proposals: s,
		Users:     s.UserRepository(),
		putProposal: func(_ context.Context, p entities.Proposal) error {
			s.PutProposal(p)
			return nil
		},
		putUser: func(_ context.Context, u entities.User) error {
			s.PutUser(u)
			return nil
		},
	}
}

// Seed writes users and proposals into the store. The service never writes either
// record itself; seeding exists for local runs and the CLI.
func (r *Repositories) Seed(ctx context.Context, users []entities.User, proposals []entities.Proposal) error {
	for _, u := range users {
		if err := r.putUser(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}
	for _, p := range proposals {
		if err := r.putProposal(ctx, p); err != nil {
			return fmt.Errorf("failed to seed proposal %s: %w", p.ID, err)
		}
	}
	log.Printf("[store] seeded users=%d proposals=%d", len(users), len(proposals))
	return nil
}

// Close releases the underlying connections.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}
