package support

import (
	"context"
	"fmt"
	"strings"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// SupportService handles the support chat list
type SupportService struct {
	AgentRepo domain.SupportAgentRepository
}

// NewSupportService creates a new SupportService instance
func NewSupportService(agentRepo domain.SupportAgentRepository) *SupportService {
	return &SupportService{AgentRepo: agentRepo}
}

// Search returns the agents whose name contains query, ignoring case.
// An empty query returns every agent.
func (s *SupportService) Search(ctx context.Context, query string) ([]*domain.SupportAgent, error) {
	agents, err := s.AgentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list support agents: %w", err)
	}

	needle := strings.ToLower(query)
	matches := make([]*domain.SupportAgent, 0, len(agents))
	for _, agent := range agents {
		if strings.Contains(strings.ToLower(agent.Name), needle) {
			matches = append(matches, agent)
		}
	}
	return matches, nil
}

// Online returns the agents currently available, for the header strip
func (s *SupportService) Online(ctx context.Context) ([]*domain.SupportAgent, error) {
	agents, err := s.AgentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list support agents: %w", err)
	}

	online := make([]*domain.SupportAgent, 0, len(agents))
	for _, agent := range agents {
		if agent.Online {
			online = append(online, agent)
		}
	}
	return online, nil
}
