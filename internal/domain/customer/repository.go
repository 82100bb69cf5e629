package customer

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// FindByID retrieves a customer by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll retrieves customers with pagination; when nameContains is
	// non-empty only customers whose name contains it (case-insensitively)
	// are returned.
	FindAll(ctx context.Context, nameContains string, page, limit int) ([]*Customer, int64, error)

	// Save persists a new customer.
	Save(ctx context.Context, customer *Customer) error

	// Update persists changes to an existing customer with optimistic locking.
	Update(ctx context.Context, customer *Customer) error

	// Delete removes a customer by identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
