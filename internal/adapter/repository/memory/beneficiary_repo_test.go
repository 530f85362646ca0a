package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

func TestBeneficiaryRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewBeneficiaryRepository()

	require.NoError(t, repo.Create(ctx, &domain.Beneficiary{ID: "1", Name: "Theresa Webb", Avatar: "avatar1"}))
	require.NoError(t, repo.Create(ctx, &domain.Beneficiary{ID: "2", Name: "Kathryn Murphy", Avatar: "avatar2", Selected: true}))
	require.NoError(t, repo.Create(ctx, &domain.Beneficiary{ID: "3", Name: "Kristin Watson", Avatar: "avatar3"}))

	directory, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, directory, 3)
	assert.Equal(t, "1", directory[0].ID)
	assert.Equal(t, "2", directory[1].ID)
	assert.Equal(t, "3", directory[2].ID)
	assert.True(t, directory[1].Selected)

	// List hands out copies
	directory[0].Name = "Changed"
	stored, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Theresa Webb", stored.Name)
}

func TestBeneficiaryRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewBeneficiaryRepository()

	require.NoError(t, repo.Create(ctx, &domain.Beneficiary{ID: "1", Name: "Theresa Webb"}))
	err := repo.Create(ctx, &domain.Beneficiary{ID: "1", Name: "Someone Else"})

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestBeneficiaryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewBeneficiaryRepository()

	beneficiary, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, beneficiary)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBeneficiaryRepository_SelectIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewBeneficiaryRepository()

	for _, b := range []domain.Beneficiary{
		{ID: "1", Name: "Theresa Webb"},
		{ID: "2", Name: "Kathryn Murphy", Selected: true},
		{ID: "3", Name: "Kristin Watson", Selected: true},
	} {
		b := b
		require.NoError(t, repo.Create(ctx, &b))
	}

	countSelected := func() (int, string) {
		directory, err := repo.List(ctx)
		require.NoError(t, err)
		count, id := 0, ""
		for _, b := range directory {
			if b.Selected {
				count++
				id = b.ID
			}
		}
		return count, id
	}

	count, id := countSelected()
	assert.Equal(t, 1, count)
	assert.Equal(t, "3", id)

	require.NoError(t, repo.Select(ctx, "1"))
	count, id = countSelected()
	assert.Equal(t, 1, count)
	assert.Equal(t, "1", id)

	assert.ErrorIs(t, repo.Select(ctx, "missing"), domain.ErrNotFound)
	count, id = countSelected()
	assert.Equal(t, 1, count)
	assert.Equal(t, "1", id)
}
