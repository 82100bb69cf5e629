package provider

import (
	"context"

	"github.com/google/uuid"
)

// Filter describes a conjunctive provider query. Zero-valued fields impose
// no constraint.
type Filter struct {
	// ServiceType matches the service category exactly.
	ServiceType string

	// MinRating keeps providers with rating >= the given value.
	MinRating *float64

	// MaxRate keeps providers with hourly_rate <= the given value.
	MaxRate *float64

	// Available filters on the availability flag.
	Available *bool
}

// ProviderRepository defines persistence operations for providers. FindByID
// doubles as the provider lookup used for booking cost derivation.
type ProviderRepository interface {
	// FindByID retrieves a provider by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)

	// FindAll retrieves providers matching the filter with pagination.
	FindAll(ctx context.Context, filter Filter, page, limit int) ([]*Provider, int64, error)

	// Save persists a new provider.
	Save(ctx context.Context, provider *Provider) error

	// Update persists changes to an existing provider with optimistic locking.
	Update(ctx context.Context, provider *Provider) error

	// Delete removes a provider by identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
