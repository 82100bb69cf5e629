package provider

import (
	"time"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/google/uuid"
)

const (
	// DefaultRating is assigned to providers created without a rating.
	DefaultRating = 5.0
)

// Provider is a service professional offering a billable hourly rate. The
// rate is nullable: a provider may be listed before billing is configured,
// and bookings against such a provider derive a zero cost.
type Provider struct {
	id          uuid.UUID
	name        string
	email       string
	phone       string
	serviceType string
	hourlyRate  *float64
	available   bool
	rating      float64

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewProvider creates a new Provider. Availability defaults to true and
// rating to DefaultRating when not supplied.
func NewProvider(
	name, email, phone, serviceType string,
	hourlyRate *float64,
	available *bool,
	rating *float64,
) (*Provider, error) {
	if name == "" {
		return nil, domain.NewValidationError("provider name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("provider email is required")
	}

	isAvailable := true
	if available != nil {
		isAvailable = *available
	}
	r := DefaultRating
	if rating != nil {
		r = *rating
	}

	now := time.Now().UTC()
	return &Provider{
		id:          uuid.New(),
		name:        name,
		email:       email,
		phone:       phone,
		serviceType: serviceType,
		hourlyRate:  hourlyRate,
		available:   isAvailable,
		rating:      r,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Provider from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name, email, phone, serviceType string,
	hourlyRate *float64,
	available bool,
	rating float64,
	version int64,
	createdAt, updatedAt time.Time,
) *Provider {
	return &Provider{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		serviceType: serviceType,
		hourlyRate:  hourlyRate,
		available:   available,
		rating:      rating,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Email() string        { return p.email }
func (p *Provider) Phone() string        { return p.phone }
func (p *Provider) ServiceType() string  { return p.serviceType }
func (p *Provider) HourlyRate() *float64 { return p.hourlyRate }
func (p *Provider) Available() bool      { return p.available }
func (p *Provider) Rating() float64      { return p.rating }
func (p *Provider) Version() int64       { return p.version }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }

// --- Behavior ---

// Update holds a partial provider update: only non-nil fields are applied.
type Update struct {
	Name        *string
	Email       *string
	Phone       *string
	ServiceType *string
	HourlyRate  *float64
	Available   *bool
	Rating      *float64
}

// Apply applies a partial update to the provider profile.
func (p *Provider) Apply(u Update) error {
	if u.Name != nil {
		if *u.Name == "" {
			return domain.NewValidationError("provider name cannot be empty")
		}
		p.name = *u.Name
	}
	if u.Email != nil {
		if *u.Email == "" {
			return domain.NewValidationError("provider email cannot be empty")
		}
		p.email = *u.Email
	}
	if u.Phone != nil {
		p.phone = *u.Phone
	}
	if u.ServiceType != nil {
		p.serviceType = *u.ServiceType
	}
	if u.HourlyRate != nil {
		p.hourlyRate = u.HourlyRate
	}
	if u.Available != nil {
		p.available = *u.Available
	}
	if u.Rating != nil {
		p.rating = *u.Rating
	}
	p.version++
	p.updatedAt = time.Now().UTC()
	return nil
}
