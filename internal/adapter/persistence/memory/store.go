// Package memory is a process-local record store. It backs STORE_DRIVER=memory for
// local development and the use-case scenario tests.
package memory

import (
	"context"
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"
	"sort"
	"sync"
	"time"
)

type Store struct {
	mu        sync.RWMutex
	stages    map[string]entities.PipelineStage
	proposals map[string]entities.Proposal
	users     map[string]entities.User
}

var (
	_ interfaces.IPipelineStageRepository = (*Store)(nil)
	_ interfaces.IProposalRepository      = (*Store)(nil)
	_ interfaces.IUserRepository          = userRepo{}
)

func NewStore() *Store {
	return &Store{
		stages:    make(map[string]entities.PipelineStage),
		proposals: make(map[string]entities.Proposal),
		users:     make(map[string]entities.User),
	}
}

// PutProposal inserts or replaces a proposal.
func (s *Store) PutProposal(p entities.Proposal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals[p.ID] = p
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) ListByUserID(_ context.Context, userID string) ([]entities.PipelineStage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.PipelineStage, 0)
	for _, st := range s.stages {
		if st.UserID == userID {
			out = append(out, st)
		}
	}
	sortStages(out)
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.PipelineStage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stages[id], nil
}

func (s *Store) Create(_ context.Context, st entities.PipelineStage) (entities.PipelineStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages[st.ID] = st
	return st, nil
}

func (s *Store) CreateIfAbsent(_ context.Context, st entities.PipelineStage) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stages[st.ID]; ok {
		return false, nil
	}
	s.stages[st.ID] = st
	return true, nil
}

func (s *Store) Update(_ context.Context, id string, u entities.PipelineStageUpdate) (entities.PipelineStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stages[id]
	if !ok {
		return entities.PipelineStage{}, nil
	}
	st = u.Apply(st)
	st.UpdatedAt = time.Now().UTC()
	s.stages[id] = st
	return st, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stages, id)
	return nil
}

// Find returns matching proposals ordered by creation time.
func (s *Store) Find(_ context.Context, f entities.ProposalFilter) ([]entities.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Proposal, 0)
	for _, p := range s.proposals {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UserRepository adapts the store to IUserRepository. Store cannot implement both
// GetByID signatures directly.
func (s *Store) UserRepository() interfaces.IUserRepository {
	return userRepo{s}
}

type userRepo struct{ s *Store }

func (r userRepo) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users[id], nil
}

func sortStages(stages []entities.PipelineStage) {
	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].Order == stages[j].Order {
			return stages[i].ID < stages[j].ID
		}
		return stages[i].Order < stages[j].Order
	})
}
