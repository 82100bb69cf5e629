package booking

import (
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/google/uuid"
)

// DefaultDurationHours is applied when a booking request omits the duration.
const DefaultDurationHours = 2

// Booking is the aggregate root for a scheduled service engagement linking
// one customer and one provider.
type Booking struct {
	id                  uuid.UUID
	customerID          uuid.UUID
	providerID          uuid.UUID
	serviceDate         time.Time
	serviceTime         string
	durationHours       int
	totalCost           float64
	status              BookingStatus
	specialInstructions string

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking with status=Pending and the cost derived
// by the caller at creation time. The cost is fixed here and never recomputed.
func NewBooking(
	customerID, providerID uuid.UUID,
	serviceDate time.Time,
	serviceTime string,
	durationHours int,
	totalCost float64,
	specialInstructions string,
) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer ID is required")
	}
	if providerID == uuid.Nil {
		return nil, domain.NewValidationError("provider ID is required")
	}
	if serviceDate.IsZero() {
		return nil, domain.NewValidationError("service date is required")
	}
	if serviceTime == "" {
		return nil, domain.NewValidationError("service time is required")
	}
	if durationHours < 0 {
		return nil, domain.NewValidationError("duration hours cannot be negative")
	}
	if durationHours == 0 {
		durationHours = DefaultDurationHours
	}

	now := time.Now().UTC()
	return &Booking{
		id:                  uuid.New(),
		customerID:          customerID,
		providerID:          providerID,
		serviceDate:         serviceDate,
		serviceTime:         serviceTime,
		durationHours:       durationHours,
		totalCost:           totalCost,
		status:              StatusPending,
		specialInstructions: specialInstructions,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, customerID, providerID uuid.UUID,
	serviceDate time.Time,
	serviceTime string,
	durationHours int,
	totalCost float64,
	status BookingStatus,
	specialInstructions string,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                  id,
		customerID:          customerID,
		providerID:          providerID,
		serviceDate:         serviceDate,
		serviceTime:         serviceTime,
		durationHours:       durationHours,
		totalCost:           totalCost,
		status:              status,
		specialInstructions: specialInstructions,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) ProviderID() uuid.UUID       { return b.providerID }
func (b *Booking) ServiceDate() time.Time      { return b.serviceDate }
func (b *Booking) ServiceTime() string         { return b.serviceTime }
func (b *Booking) DurationHours() int          { return b.durationHours }
func (b *Booking) TotalCost() float64          { return b.totalCost }
func (b *Booking) Status() BookingStatus       { return b.status }
func (b *Booking) SpecialInstructions() string { return b.specialInstructions }
func (b *Booking) Version() int64              { return b.version }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

// --- Behavior ---

// ChangeStatus overwrites the booking status with the caller-supplied value.
// The status vocabulary is open: any non-empty string is accepted, known or
// not, and no transition is disallowed.
func (b *Booking) ChangeStatus(status BookingStatus) error {
	if status == "" {
		return domain.NewValidationError("status is required")
	}
	b.status = status
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel sets the booking status to Cancelled. Cancelling an already
// cancelled booking succeeds and re-sets the same value.
func (b *Booking) Cancel() error {
	return b.ChangeStatus(StatusCancelled)
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
