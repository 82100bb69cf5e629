package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	bookingDomain "github.com/cleansync/service-booking/internal/domain/booking"
	providerDomain "github.com/cleansync/service-booking/internal/domain/provider"
	"github.com/cleansync/service-booking/internal/events"
	"github.com/cleansync/service-booking/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const serviceDateLayout = "2006-01-02"

// EventPublisher publishes CloudEvents; satisfied by *kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	CustomerID          uuid.UUID `json:"customer_id" binding:"required"`
	ProviderID          uuid.UUID `json:"provider_id" binding:"required"`
	ServiceDate         string    `json:"service_date" binding:"required"`
	ServiceTime         string    `json:"service_time" binding:"required"`
	DurationHours       int       `json:"duration_hours"`
	SpecialInstructions string    `json:"special_instructions"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                  uuid.UUID `json:"id"`
	CustomerID          uuid.UUID `json:"customer_id"`
	ProviderID          uuid.UUID `json:"provider_id"`
	ServiceDate         string    `json:"service_date"`
	ServiceTime         string    `json:"service_time"`
	DurationHours       int       `json:"duration_hours"`
	TotalCost           float64   `json:"total_cost"`
	Status              string    `json:"status"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Version             int64     `json:"version"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BookingStatsDTO holds booking counts grouped by status.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService owns the booking lifecycle: creation with cost derivation,
// status transitions, and filtered queries.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	providers providerDomain.ProviderRepository
	costing   bookingDomain.CostCalculator
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	providers providerDomain.ProviderRepository,
	costing bookingDomain.CostCalculator,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		providers: providers,
		costing:   costing,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking creates a booking with status Pending and a cost derived
// from the provider's hourly rate. A missing provider or unset rate is not
// an error: the cost degrades to zero so creation is never blocked by
// incomplete billing data. Referential integrity against the customer and
// provider rows is left to the store's foreign keys.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	serviceDate, err := time.Parse(serviceDateLayout, req.ServiceDate)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid service date %q, expected YYYY-MM-DD", req.ServiceDate))
	}

	duration := req.DurationHours
	if duration == 0 {
		duration = bookingDomain.DefaultDurationHours
	}

	rate, err := s.lookupHourlyRate(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	totalCost := s.costing.Calculate(bookingDomain.CostParams{
		HourlyRate:    rate,
		DurationHours: duration,
	})

	bk, err := bookingDomain.NewBooking(
		req.CustomerID,
		req.ProviderID,
		serviceDate,
		req.ServiceTime,
		duration,
		totalCost,
		req.SpecialInstructions,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.publishBookingCreated(ctx, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// lookupHourlyRate resolves the provider's rate for cost derivation. A
// provider that does not exist yields a nil rate; any other lookup failure
// is surfaced.
func (s *BookingService) lookupHourlyRate(ctx context.Context, providerID uuid.UUID) (*float64, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}
	return p.HourlyRate(), nil
}

// SetStatus overwrites the booking's status with the caller-supplied value.
// The only failure for an existing booking is an empty status; any other
// string is accepted verbatim.
func (s *BookingService) SetStatus(ctx context.Context, bookingID uuid.UUID, status string) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	oldStatus := bk.Status()
	if err := bk.ChangeStatus(bookingDomain.BookingStatus(status)); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingStatusChangedEvent{
		BookingID:  bk.ID(),
		OldStatus:  string(oldStatus),
		NewStatus:  string(bk.Status()),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingStatusChanged, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// CancelBooking sets the booking status to Cancelled. Idempotent: cancelling
// an already cancelled booking succeeds.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.Cancel(); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingCancelledEvent{
		BookingID:  bk.ID(),
		CustomerID: bk.CustomerID(),
		ProviderID: bk.ProviderID(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCancelled, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings retrieves bookings matching the conjunction of all set
// filter fields; an empty filter returns every booking.
func (s *BookingService) ListBookings(ctx context.Context, filter bookingDomain.Filter, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	bookings, total, err := s.repo.FindAll(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// GetBookingStats returns aggregate booking counts grouped by status.
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings: total,
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                  bk.ID(),
		CustomerID:          bk.CustomerID(),
		ProviderID:          bk.ProviderID(),
		ServiceDate:         bk.ServiceDate().Format(serviceDateLayout),
		ServiceTime:         bk.ServiceTime(),
		DurationHours:       bk.DurationHours(),
		TotalCost:           bk.TotalCost(),
		Status:              string(bk.Status()),
		SpecialInstructions: bk.SpecialInstructions(),
		Version:             bk.Version(),
		CreatedAt:           bk.CreatedAt(),
		UpdatedAt:           bk.UpdatedAt(),
	}
}

func (s *BookingService) publishBookingCreated(ctx context.Context, bk *bookingDomain.Booking) {
	evt := events.BookingCreatedEvent{
		BookingID:     bk.ID(),
		CustomerID:    bk.CustomerID(),
		ProviderID:    bk.ProviderID(),
		ServiceDate:   bk.ServiceDate(),
		ServiceTime:   bk.ServiceTime(),
		DurationHours: bk.DurationHours(),
		TotalCost:     bk.TotalCost(),
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCreated, evt)
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
