package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

func TestSupportAgentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSupportAgentRepository()

	require.NoError(t, repo.Create(ctx, &domain.SupportAgent{ID: "1", Name: "Sarah Johnson", Online: true}))
	require.NoError(t, repo.Create(ctx, &domain.SupportAgent{ID: "2", Name: "Michael Chen"}))

	agents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "Sarah Johnson", agents[0].Name)
	assert.Equal(t, "Michael Chen", agents[1].Name)

	agent, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, agent.Online)

	_, err = repo.GetByID(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Create(ctx, &domain.SupportAgent{ID: "2", Name: "Dup"}), ErrDuplicateID)
}
