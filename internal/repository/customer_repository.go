package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	customerDomain "github.com/cleansync/service-booking/internal/domain/customer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel is the GORM model for the customers table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:100;index"`
	Email     string    `gorm:"uniqueIndex;not null;size:100"`
	Phone     string    `gorm:"size:20"`
	Address   string    `gorm:"size:500"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CustomerModel) TableName() string {
	return "customers"
}

// GormCustomerRepository is the GORM-based implementation of CustomerRepository.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID retrieves a customer by its unique identifier.
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error) {
	var model CustomerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Customer", id.String())
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}
	return toDomainCustomer(&model), nil
}

// FindAll retrieves customers with pagination, optionally narrowed to names
// containing the given substring (case-insensitive).
func (r *GormCustomerRepository) FindAll(ctx context.Context, nameContains string, page, limit int) ([]*customerDomain.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&CustomerModel{})
	if nameContains != "" {
		query = query.Where("name ILIKE ?", "%"+nameContains+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var models []CustomerModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find customers: %w", err)
	}

	customers := make([]*customerDomain.Customer, len(models))
	for i, m := range models {
		customers[i] = toDomainCustomer(&m)
	}
	return customers, total, nil
}

// Save persists a new customer.
func (r *GormCustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	model := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

// Update persists changes to an existing customer with optimistic locking.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customerDomain.Customer) error {
	model := toCustomerModel(c)

	expectedVersion := c.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&CustomerModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"email":      model.Email,
			"phone":      model.Phone,
			"address":    model.Address,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("customer was modified by another transaction")
	}
	return nil
}

// Delete removes a customer by identifier.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CustomerModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Customer", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toCustomerModel(c *customerDomain.Customer) *CustomerModel {
	return &CustomerModel{
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

func toDomainCustomer(m *CustomerModel) *customerDomain.Customer {
	return customerDomain.Reconstruct(
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
