package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

func TestActivityRepository_ListLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()

	titles := []string{"Grocery Shopping", "Salary Deposit", "Netflix Subscription"}
	for i, title := range titles {
		require.NoError(t, repo.Create(ctx, &domain.Activity{
			ID:     string(rune('1' + i)),
			Title:  title,
			Amount: decimal.NewFromInt(int64(10 * (i + 1))),
			Type:   domain.ActivityTypeOutgoing,
		}))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Grocery Shopping", all[0].Title)
	assert.Equal(t, "Netflix Subscription", all[2].Title)

	firstTwo, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, firstTwo, 2)
	assert.Equal(t, "Salary Deposit", firstTwo[1].Title)

	more, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, more, 3)
}

func TestActivityRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()
	require.NoError(t, repo.Create(ctx, &domain.Activity{ID: "1", Title: "Salary Deposit", Type: domain.ActivityTypeIncoming}))

	activity, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Salary Deposit", activity.Title)

	_, err = repo.GetByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Create(ctx, &domain.Activity{ID: "1"}), ErrDuplicateID)
}
