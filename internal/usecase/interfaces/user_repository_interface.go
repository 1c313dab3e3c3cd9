package interfaces

import (
	"context"
	"proposal_forecasting/internal/domain/entities"
)

// IUserRepository resolves display names of proposal owners.
//
//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository.go -package=mock_interfaces

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
