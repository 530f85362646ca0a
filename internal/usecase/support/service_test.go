package support

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-wallet/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

func newSeededService(t *testing.T) *SupportService {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewSupportAgentRepository()
	for _, agent := range []domain.SupportAgent{
		{ID: "1", Name: "Sarah Johnson", Role: "Financial Advisor", Online: true},
		{ID: "2", Name: "Michael Chen", Role: "Account Manager", Online: true},
		{ID: "3", Name: "Emma Wilson", Role: "Support Specialist"},
		{ID: "4", Name: "James Rodriguez", Role: "Investment Advisor"},
	} {
		agent := agent
		require.NoError(t, repo.Create(ctx, &agent))
	}
	return NewSupportService(repo)
}

func names(agents []*domain.SupportAgent) []string {
	out := make([]string, 0, len(agents))
	for _, agent := range agents {
		out = append(out, agent.Name)
	}
	return out
}

func TestSupportService_Search(t *testing.T) {
	service := newSeededService(t)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Sarah Johnson", "Michael Chen", "Emma Wilson", "James Rodriguez"}},
		{query: "son", want: []string{"Sarah Johnson", "Emma Wilson"}},
		{query: "CHEN", want: []string{"Michael Chen"}},
		{query: "advisor", want: []string{}}, // matches names only, not roles
		{query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			agents, err := service.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(agents))
		})
	}
}

func TestSupportService_Online(t *testing.T) {
	service := newSeededService(t)

	agents, err := service.Online(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Johnson", "Michael Chen"}, names(agents))
}
