package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	bookingDomain "github.com/cleansync/service-booking/internal/domain/booking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index;not null"`
	ProviderID          uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceDate         time.Time `gorm:"type:date;not null;index"`
	ServiceTime         string    `gorm:"size:8;not null"`
	DurationHours       int       `gorm:"not null;default:2"`
	TotalCost           float64   `gorm:"not null;default:0"`
	Status              string    `gorm:"not null;size:30;index;default:'Pending'"`
	SpecialInstructions string    `gorm:"size:1000"`
	Version             int64     `gorm:"not null;default:1"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindAll retrieves bookings matching the filter with pagination.
func (r *GormBookingRepository) FindAll(ctx context.Context, filter bookingDomain.Filter, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	query := applyBookingFilter(r.db.WithContext(ctx).Model(&BookingModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, total, nil
}

// applyBookingFilter adds the conjunction of all set filter fields. Date
// comparisons happen on the date column itself, and the folded status match
// runs in the store rather than over a fetched result set.
func applyBookingFilter(query *gorm.DB, filter bookingDomain.Filter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ProviderID != nil {
		query = query.Where("provider_id = ?", *filter.ProviderID)
	}
	if filter.ServiceDate != nil {
		query = query.Where("service_date = ?", filter.ServiceDate.Format(dateLayout))
	}
	if filter.ServiceDateFrom != nil {
		query = query.Where("service_date >= ?", filter.ServiceDateFrom.Format(dateLayout))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StatusFold != "" {
		query = query.Where("LOWER(status) = LOWER(?)", filter.StatusFold)
	}
	return query
}

// CountByStatus returns booking counts grouped by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before the write).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":               model.Status,
			"service_date":         model.ServiceDate,
			"service_time":         model.ServiceTime,
			"duration_hours":       model.DurationHours,
			"total_cost":           model.TotalCost,
			"special_instructions": model.SpecialInstructions,
			"version":              model.Version,
			"updated_at":           model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:                  bk.ID(),
		CustomerID:          bk.CustomerID(),
		ProviderID:          bk.ProviderID(),
		ServiceDate:         bk.ServiceDate(),
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

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID,
		m.CustomerID,
		m.ProviderID,
		m.ServiceDate,
		m.ServiceTime,
		m.DurationHours,
		m.TotalCost,
		bookingDomain.BookingStatus(m.Status),
		m.SpecialInstructions,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
