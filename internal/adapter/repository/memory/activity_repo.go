package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// activityRepository implements domain.ActivityRepository
type activityRepository struct {
	mu    sync.RWMutex
	store orderedStore[domain.Activity]
}

// NewActivityRepository creates a new, empty activity feed
func NewActivityRepository() domain.ActivityRepository {
	return &activityRepository{store: newOrderedStore[domain.Activity]()}
}

// GetByID retrieves a copy of the activity with the given ID
func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("activity %q: %w", id, domain.ErrNotFound)
	}
	return &activity, nil
}

// Create appends an activity to the feed
func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.add(activity.ID, *activity); err != nil {
		return fmt.Errorf("failed to create activity %q: %w", activity.ID, err)
	}
	return nil
}

// List retrieves up to limit activities in feed order
func (r *activityRepository) List(ctx context.Context, limit int) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := r.store.values(limit)
	activities := make([]*domain.Activity, len(values))
	for i := range values {
		activities[i] = &values[i]
	}
	return activities, nil
}
