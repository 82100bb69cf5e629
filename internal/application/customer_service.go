package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	customerDomain "github.com/cleansync/service-booking/internal/domain/customer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCustomerRequest is the request DTO for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest replaces the whole customer profile.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerDTO is the API response representation of a customer.
type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerService is the application service for customer record management.
type CustomerService struct {
	repo   customerDomain.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo customerDomain.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// CreateCustomer registers a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerDTO, error) {
	c, err := customerDomain.NewCustomer(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("customer created", zap.String("customer_id", c.ID().String()))

	result := toCustomerDTO(c)
	return &result, nil
}

// GetCustomer retrieves a single customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	result := toCustomerDTO(c)
	return &result, nil
}

// ListCustomers retrieves customers with pagination, optionally narrowed to
// names containing the given substring.
func (s *CustomerService) ListCustomers(ctx context.Context, nameContains string, page, limit int) (*domain.PaginatedResult[CustomerDTO], error) {
	customers, total, err := s.repo.FindAll(ctx, nameContains, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]CustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = toCustomerDTO(c)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateCustomer replaces the customer's profile fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	result := toCustomerDTO(c)
	return &result, nil
}

// DeleteCustomer removes a customer by ID.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	return s.repo.Delete(ctx, customerID)
}

func toCustomerDTO(c *customerDomain.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
