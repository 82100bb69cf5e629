//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/cleansync/service-booking/internal/application"
	bookingDomain "github.com/cleansync/service-booking/internal/domain/booking"
	bookingEvents "github.com/cleansync/service-booking/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateBooking_DerivesCostAndPublishesEvent verifies the end-to-end
// creation flow: the cost comes from the provider's hourly rate, the row
// lands in PostgreSQL, and a booking.created CloudEvent appears on Kafka.
func TestCreateBooking_DerivesCostAndPublishesEvent(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.ReviewConsumer.Close() }()

	customerID := uuid.New()
	providerID := uuid.New()
	rate := 45.0
	seedCustomer(t, infra.DB, customerID)
	seedProvider(t, infra.DB, providerID, &rate)

	dto, err := stack.Bookings.CreateBooking(context.Background(), application.CreateBookingRequest{
		CustomerID:    customerID,
		ProviderID:    providerID,
		ServiceDate:   "2026-09-15",
		ServiceTime:   "10:00",
		DurationHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, dto.TotalCost)
	assert.Equal(t, "Pending", dto.Status)

	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingCreated, 15*time.Second)

	var created bookingEvents.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&created))
	assert.Equal(t, dto.ID, created.BookingID)
	assert.Equal(t, 180.0, created.TotalCost)
	assert.Equal(t, 4, created.DurationHours)
}

// TestListBookings_StoreSideDateAndStatusFilters verifies that the date
// lower-bound and case-insensitive status predicates run inside PostgreSQL:
// the upcoming and completed views must come back correct straight from the
// store, whatever casing the status was written with.
func TestListBookings_StoreSideDateAndStatusFilters(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.ReviewConsumer.Close() }()

	customerID := uuid.New()
	providerID := uuid.New()
	rate := 45.0
	seedCustomer(t, infra.DB, customerID)
	seedProvider(t, infra.DB, providerID, &rate)

	var ids []uuid.UUID
	for _, date := range []string{"2026-09-10", "2026-09-15", "2026-09-20"} {
		dto, err := stack.Bookings.CreateBooking(context.Background(), application.CreateBookingRequest{
			CustomerID:  customerID,
			ProviderID:  providerID,
			ServiceDate: date,
			ServiceTime: "10:00",
		})
		require.NoError(t, err)
		ids = append(ids, dto.ID)
	}

	_, err := stack.Bookings.SetStatus(context.Background(), ids[0], "completed")
	require.NoError(t, err)
	_, err = stack.Bookings.SetStatus(context.Background(), ids[1], "Completed")
	require.NoError(t, err)

	exact := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	byDate, err := stack.Bookings.ListBookings(context.Background(),
		bookingDomain.Filter{ServiceDate: &exact}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), byDate.Total)
	assert.Equal(t, "2026-09-15", byDate.Items[0].ServiceDate)

	from := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	upcoming, err := stack.Bookings.ListBookings(context.Background(),
		bookingDomain.Filter{ServiceDateFrom: &from}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), upcoming.Total)

	completed, err := stack.Bookings.ListBookings(context.Background(),
		bookingDomain.Filter{StatusFold: "Completed"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed.Total, "both casings of the status must match the folded filter")
}

// TestReviewSubmitted_UpdatesProviderRating verifies that when a
// ReviewSubmittedEvent is published to review.events, the consumer picks it
// up and stores the rating on the provider profile.
func TestReviewSubmitted_UpdatesProviderRating(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.ReviewConsumer.Close() }()

	providerID := uuid.New()
	rate := 45.0
	seedProvider(t, infra.DB, providerID, &rate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.ReviewConsumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	evt := bookingEvents.ReviewSubmittedEvent{
		ReviewID:   uuid.New(),
		ProviderID: providerID,
		Rating:     4.2,
		Comment:    "thorough and on time",
		OccurredAt: time.Now().UTC(),
	}
	publishTestEvent(t, infra.KafkaBrokers, bookingEvents.TopicReviewEvents,
		"service-review", bookingEvents.ReviewSubmitted, evt)

	model := waitForProviderRating(t, infra.DB, providerID, 4.2, 15*time.Second)
	assert.Equal(t, int64(2), model.Version, "rating update should bump the version")
}
