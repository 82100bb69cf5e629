package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter describes a conjunctive booking query: every set field must match.
// Zero-valued fields impose no constraint.
type Filter struct {
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID

	// ServiceDate matches the service date exactly.
	ServiceDate *time.Time

	// ServiceDateFrom matches bookings with service_date on or after the
	// given date (the "upcoming" view).
	ServiceDateFrom *time.Time

	// Status matches the status exactly.
	Status string

	// StatusFold matches the status case-insensitively (the "completed"
	// view matches any casing).
	StatusFold string
}

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindAll retrieves bookings matching the filter with pagination,
	// newest first, along with the total match count.
	FindAll(ctx context.Context, filter Filter, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}
