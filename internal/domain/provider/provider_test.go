package provider

import (
	"testing"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Defaults(t *testing.T) {
	p, err := NewProvider("Alice Cleaner", "alice@example.com", "", "cleaning", nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, p.Available())
	assert.Equal(t, DefaultRating, p.Rating())
	assert.Nil(t, p.HourlyRate())
	assert.Equal(t, int64(1), p.Version())
}

func TestNewProvider_ExplicitValues(t *testing.T) {
	rate := 60.0
	available := false
	rating := 3.5

	p, err := NewProvider("Bob Plumber", "bob@example.com", "555-0101", "plumbing", &rate, &available, &rating)
	require.NoError(t, err)

	require.NotNil(t, p.HourlyRate())
	assert.Equal(t, 60.0, *p.HourlyRate())
	assert.False(t, p.Available())
	assert.Equal(t, 3.5, p.Rating())
}

func TestNewProvider_RequiredFields(t *testing.T) {
	var valErr *domain.ValidationError

	_, err := NewProvider("", "alice@example.com", "", "", nil, nil, nil)
	assert.ErrorAs(t, err, &valErr)

	_, err = NewProvider("Alice", "", "", "", nil, nil, nil)
	assert.ErrorAs(t, err, &valErr)
}

func TestApply_PartialUpdate(t *testing.T) {
	rate := 50.0
	p, err := NewProvider("Alice Cleaner", "alice@example.com", "", "cleaning", &rate, nil, nil)
	require.NoError(t, err)

	newRate := 65.0
	rating := 4.2
	require.NoError(t, p.Apply(Update{HourlyRate: &newRate, Rating: &rating}))

	// Untouched fields survive a partial update.
	assert.Equal(t, "Alice Cleaner", p.Name())
	assert.Equal(t, "cleaning", p.ServiceType())
	assert.Equal(t, 65.0, *p.HourlyRate())
	assert.Equal(t, 4.2, p.Rating())
	assert.Equal(t, int64(2), p.Version())
}

func TestApply_RejectsEmptyRequiredFields(t *testing.T) {
	p, err := NewProvider("Alice Cleaner", "alice@example.com", "", "cleaning", nil, nil, nil)
	require.NoError(t, err)

	empty := ""
	var valErr *domain.ValidationError
	assert.ErrorAs(t, p.Apply(Update{Name: &empty}), &valErr)
	assert.ErrorAs(t, p.Apply(Update{Email: &empty}), &valErr)
	assert.Equal(t, "Alice Cleaner", p.Name())
}
