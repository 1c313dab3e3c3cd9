package interfaces

import (
	"context"
	"proposal_forecasting/internal/domain/entities"
)

// IProposalRepository is the read side of the proposal record store.
//
// Every returned proposal carries its blocks and pricing items.
//
//go:generate mockgen -source=proposal_repository_interface.go -destination=mocks/mock_proposal_repository.go -package=mock_interfaces

type IProposalRepository interface {
	Find(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error)
}
