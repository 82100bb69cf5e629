package customer

import (
	"testing"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Jane Doe", "jane@example.com", "555-0100", "12 Main St")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", c.Name())
	assert.Equal(t, int64(1), c.Version())

	var valErr *domain.ValidationError
	_, err = NewCustomer("", "jane@example.com", "", "")
	assert.ErrorAs(t, err, &valErr)
	_, err = NewCustomer("Jane Doe", "", "", "")
	assert.ErrorAs(t, err, &valErr)
}

func TestCustomerUpdate_ReplacesProfile(t *testing.T) {
	c, err := NewCustomer("Jane Doe", "jane@example.com", "555-0100", "12 Main St")
	require.NoError(t, err)

	// Full replacement: omitted optional fields are cleared, not kept.
	require.NoError(t, c.Update("Jane Smith", "jane.smith@example.com", "", ""))
	assert.Equal(t, "Jane Smith", c.Name())
	assert.Equal(t, "", c.Phone())
	assert.Equal(t, "", c.Address())
	assert.Equal(t, int64(2), c.Version())

	var valErr *domain.ValidationError
	assert.ErrorAs(t, c.Update("", "jane@example.com", "", ""), &valErr)
}
