package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no record matches the requested ID
var ErrNotFound = errors.New("not found")

// BeneficiaryRepository defines the interface for the beneficiary directory
type BeneficiaryRepository interface {
	// GetByID retrieves a beneficiary by its ID
	GetByID(ctx context.Context, id string) (*Beneficiary, error)

	// Create adds a beneficiary to the end of the directory
	Create(ctx context.Context, beneficiary *Beneficiary) error

	// List returns a copy of the directory in display order
	List(ctx context.Context) ([]Beneficiary, error)

	// Select marks the beneficiary with the given ID as the only selected one
	Select(ctx context.Context, id string) error
}

// ActivityRepository defines the interface for the home activity feed
type ActivityRepository interface {
	// GetByID retrieves an activity by its ID
	GetByID(ctx context.Context, id string) (*Activity, error)

	// Create appends an activity to the feed
	Create(ctx context.Context, activity *Activity) error

	// List retrieves up to limit activities in feed order
	// If limit is zero or negative, returns all activities
	List(ctx context.Context, limit int) ([]*Activity, error)
}

// SupportAgentRepository defines the interface for the support agent list
type SupportAgentRepository interface {
	// GetByID retrieves an agent by its ID
	GetByID(ctx context.Context, id string) (*SupportAgent, error)

	// Create appends an agent to the list
	Create(ctx context.Context, agent *SupportAgent) error

	// List retrieves all agents in display order
	List(ctx context.Context) ([]*SupportAgent, error)
}
