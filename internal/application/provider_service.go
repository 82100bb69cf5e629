package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	providerDomain "github.com/cleansync/service-booking/internal/domain/provider"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProviderRequest is the request DTO for registering a provider.
type CreateProviderRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	ServiceType string   `json:"service_type"`
	HourlyRate  *float64 `json:"hourly_rate"`
	IsAvailable *bool    `json:"is_available"`
	Rating      *float64 `json:"rating"`
}

// UpdateProviderRequest is a partial update: only supplied fields change.
type UpdateProviderRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	ServiceType *string  `json:"service_type"`
	HourlyRate  *float64 `json:"hourly_rate"`
	IsAvailable *bool    `json:"is_available"`
	Rating      *float64 `json:"rating"`
}

// ProviderDTO is the API response representation of a provider.
type ProviderDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
	HourlyRate  *float64  `json:"hourly_rate"`
	IsAvailable bool      `json:"is_available"`
	Rating      float64   `json:"rating"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProviderService is the application service for provider record management.
type ProviderService struct {
	repo   providerDomain.ProviderRepository
	logger *zap.Logger
}

// NewProviderService creates a new ProviderService.
func NewProviderService(repo providerDomain.ProviderRepository, logger *zap.Logger) *ProviderService {
	return &ProviderService{repo: repo, logger: logger}
}

// CreateProvider registers a new provider.
func (s *ProviderService) CreateProvider(ctx context.Context, req CreateProviderRequest) (*ProviderDTO, error) {
	p, err := providerDomain.NewProvider(
		req.Name,
		req.Email,
		req.Phone,
		req.ServiceType,
		req.HourlyRate,
		req.IsAvailable,
		req.Rating,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save provider: %w", err)
	}

	s.logger.Info("provider created",
		zap.String("provider_id", p.ID().String()),
		zap.String("service_type", p.ServiceType()),
	)

	result := toProviderDTO(p)
	return &result, nil
}

// GetProvider retrieves a single provider by ID.
func (s *ProviderService) GetProvider(ctx context.Context, providerID uuid.UUID) (*ProviderDTO, error) {
	p, err := s.repo.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	result := toProviderDTO(p)
	return &result, nil
}

// ListProviders retrieves providers matching the filter with pagination.
func (s *ProviderService) ListProviders(ctx context.Context, filter providerDomain.Filter, page, limit int) (*domain.PaginatedResult[ProviderDTO], error) {
	providers, total, err := s.repo.FindAll(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProviderDTO, len(providers))
	for i, p := range providers {
		dtos[i] = toProviderDTO(p)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateProvider applies a partial update to the provider profile.
func (s *ProviderService) UpdateProvider(ctx context.Context, providerID uuid.UUID, req UpdateProviderRequest) (*ProviderDTO, error) {
	p, err := s.repo.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	update := providerDomain.Update{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		HourlyRate:  req.HourlyRate,
		Available:   req.IsAvailable,
		Rating:      req.Rating,
	}
	if err := p.Apply(update); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	result := toProviderDTO(p)
	return &result, nil
}

// DeleteProvider removes a provider by ID.
func (s *ProviderService) DeleteProvider(ctx context.Context, providerID uuid.UUID) error {
	return s.repo.Delete(ctx, providerID)
}

// ApplyReviewRating stores a submitted review rating on the provider
// profile. Called by the review event consumer.
func (s *ProviderService) ApplyReviewRating(ctx context.Context, providerID uuid.UUID, rating float64) error {
	p, err := s.repo.FindByID(ctx, providerID)
	if err != nil {
		return err
	}

	if err := p.Apply(providerDomain.Update{Rating: &rating}); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.logger.Info("provider rating updated",
		zap.String("provider_id", providerID.String()),
		zap.Float64("rating", rating),
	)
	return nil
}

func toProviderDTO(p *providerDomain.Provider) ProviderDTO {
	return ProviderDTO{
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
