package events

import (
	"time"

	"github.com/google/uuid"
)

// Kafka topics.
const (
	TopicBookingEvents = "booking.events"
	TopicReviewEvents  = "review.events"
)

// Event types carried in the CloudEvent envelope.
const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingCancelled     = "booking.cancelled"
	ReviewSubmitted      = "review.submitted"
)

// BookingCreatedEvent is published when a booking is created with its
// derived cost.
type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ServiceDate   time.Time `json:"service_date"`
	ServiceTime   string    `json:"service_time"`
	DurationHours int       `json:"duration_hours"`
	TotalCost     float64   `json:"total_cost"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published on every status transition,
// including transitions to values outside the conventional vocabulary.
type BookingStatusChangedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published when a booking is cancelled through
// the named cancel transition.
type BookingCancelledEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReviewSubmittedEvent is consumed from the review service; the submitted
// rating is applied to the provider profile.
type ReviewSubmittedEvent struct {
	ReviewID   uuid.UUID `json:"review_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
