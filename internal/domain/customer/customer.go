package customer

import (
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/google/uuid"
)

// Customer is a marketplace customer who books services from providers.
// Identity is immutable; profile fields are mutable via full-record update.
type Customer struct {
	id      uuid.UUID
	name    string
	email   string
	phone   string
	address string

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewCustomer creates a new Customer with validated required fields.
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("customer email is required")
	}

	now := time.Now().UTC()
	return &Customer{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Customer from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name, email, phone, address string,
	version int64,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// --- Getters ---

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) Version() int64       { return c.version }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// --- Behavior ---

// Update replaces the customer's profile fields. Name and email stay
// required; phone and address may be cleared.
func (c *Customer) Update(name, email, phone, address string) error {
	if name == "" {
		return domain.NewValidationError("customer name is required")
	}
	if email == "" {
		return domain.NewValidationError("customer email is required")
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.address = address
	c.version++
	c.updatedAt = time.Now().UTC()
	return nil
}
