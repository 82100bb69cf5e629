package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	providerDomain "github.com/cleansync/service-booking/internal/domain/provider"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderModel is the GORM model for the service_providers table.
type ProviderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;size:100"`
	Email       string    `gorm:"uniqueIndex;not null;size:100"`
	Phone       string    `gorm:"size:20"`
	ServiceType string    `gorm:"size:50;index"`
	HourlyRate  *float64  `gorm:""`
	IsAvailable bool      `gorm:"not null;default:true"`
	Rating      float64   `gorm:"not null;default:5.0"`
	Version     int64     `gorm:"not null;default:1"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ProviderModel) TableName() string {
	return "service_providers"
}

// GormProviderRepository is the GORM-based implementation of ProviderRepository.
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository.
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// FindByID retrieves a provider by its unique identifier.
func (r *GormProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*providerDomain.Provider, error) {
	var model ProviderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Provider", id.String())
		}
		return nil, fmt.Errorf("failed to find provider by ID: %w", err)
	}
	return toDomainProvider(&model), nil
}

// FindAll retrieves providers matching the filter with pagination.
func (r *GormProviderRepository) FindAll(ctx context.Context, filter providerDomain.Filter, page, limit int) ([]*providerDomain.Provider, int64, error) {
	query := r.db.WithContext(ctx).Model(&ProviderModel{})
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRate != nil {
		query = query.Where("hourly_rate <= ?", *filter.MaxRate)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count providers: %w", err)
	}

	var models []ProviderModel
	offset := (page - 1) * limit
	if err := query.
		Order("rating DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find providers: %w", err)
	}

	providers := make([]*providerDomain.Provider, len(models))
	for i, m := range models {
		providers[i] = toDomainProvider(&m)
	}
	return providers, total, nil
}

// Save persists a new provider.
func (r *GormProviderRepository) Save(ctx context.Context, p *providerDomain.Provider) error {
	model := toProviderModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save provider: %w", err)
	}
	return nil
}

// Update persists changes to an existing provider with optimistic locking.
func (r *GormProviderRepository) Update(ctx context.Context, p *providerDomain.Provider) error {
	model := toProviderModel(p)

	expectedVersion := p.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&ProviderModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"email":        model.Email,
			"phone":        model.Phone,
			"service_type": model.ServiceType,
			"hourly_rate":  model.HourlyRate,
			"is_available": model.IsAvailable,
			"rating":       model.Rating,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("provider was modified by another transaction")
	}
	return nil
}

// Delete removes a provider by identifier.
func (r *GormProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProviderModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Provider", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toProviderModel(p *providerDomain.Provider) *ProviderModel {
	return &ProviderModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Email:       p.Email(),
		Phone:       p.Phone(),
		ServiceType: p.ServiceType(),
		HourlyRate:  p.HourlyRate(),
		IsAvailable: p.Available(),
		Rating:      p.Rating(),
		Version:     p.Version(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomainProvider(m *ProviderModel) *providerDomain.Provider {
	return providerDomain.Reconstruct(
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.ServiceType,
		m.HourlyRate,
		m.IsAvailable,
		m.Rating,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
