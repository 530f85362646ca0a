package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// beneficiaryRepository implements domain.BeneficiaryRepository
type beneficiaryRepository struct {
	mu    sync.RWMutex
	store orderedStore[domain.Beneficiary]
}

// NewBeneficiaryRepository creates a new, empty beneficiary directory
func NewBeneficiaryRepository() domain.BeneficiaryRepository {
	return &beneficiaryRepository{store: newOrderedStore[domain.Beneficiary]()}
}

// GetByID retrieves a copy of the beneficiary with the given ID
func (r *beneficiaryRepository) GetByID(ctx context.Context, id string) (*domain.Beneficiary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beneficiary, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("beneficiary %q: %w", id, domain.ErrNotFound)
	}
	return &beneficiary, nil
}

// Create appends a beneficiary to the directory.
// Creating a selected beneficiary clears the previous selection.
func (r *beneficiaryRepository) Create(ctx context.Context, beneficiary *domain.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.add(beneficiary.ID, *beneficiary); err != nil {
		return fmt.Errorf("failed to create beneficiary %q: %w", beneficiary.ID, err)
	}

	if beneficiary.Selected {
		r.selectLocked(beneficiary.ID)
	}
	return nil
}

// List returns a copy of the directory in display order
func (r *beneficiaryRepository) List(ctx context.Context) ([]domain.Beneficiary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.values(0), nil
}

// Select marks id as the only selected beneficiary
func (r *beneficiaryRepository) Select(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store.get(id); !ok {
		return fmt.Errorf("beneficiary %q: %w", id, domain.ErrNotFound)
	}
	r.selectLocked(id)
	return nil
}

func (r *beneficiaryRepository) selectLocked(id string) {
	for key, beneficiary := range r.store.items {
		beneficiary.Selected = key == id
		r.store.items[key] = beneficiary
	}
}
