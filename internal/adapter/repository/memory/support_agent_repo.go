package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// supportAgentRepository implements domain.SupportAgentRepository
type supportAgentRepository struct {
	mu    sync.RWMutex
	store orderedStore[domain.SupportAgent]
}

// NewSupportAgentRepository creates a new, empty agent list
func NewSupportAgentRepository() domain.SupportAgentRepository {
	return &supportAgentRepository{store: newOrderedStore[domain.SupportAgent]()}
}

// GetByID retrieves a copy of the agent with the given ID
func (r *supportAgentRepository) GetByID(ctx context.Context, id string) (*domain.SupportAgent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("support agent %q: %w", id, domain.ErrNotFound)
	}
	return &agent, nil
}

// Create appends an agent to the list
func (r *supportAgentRepository) Create(ctx context.Context, agent *domain.SupportAgent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.add(agent.ID, *agent); err != nil {
		return fmt.Errorf("failed to create support agent %q: %w", agent.ID, err)
	}
	return nil
}

// List retrieves all agents in display order
func (r *supportAgentRepository) List(ctx context.Context) ([]*domain.SupportAgent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := r.store.values(0)
	agents := make([]*domain.SupportAgent, len(values))
	for i := range values {
		agents[i] = &values[i]
	}
	return agents, nil
}
