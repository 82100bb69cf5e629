package application

import (
	"context"
	"testing"

	"github.com/cleansync/service-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProviderServiceFixture() (*ProviderService, *fakeProviderRepo) {
	repo := newFakeProviderRepo()
	return NewProviderService(repo, zap.NewNop()), repo
}

func TestCreateProvider_Defaults(t *testing.T) {
	svc, _ := newProviderServiceFixture()

	dto, err := svc.CreateProvider(context.Background(), CreateProviderRequest{
		Name:        "Alice Cleaner",
		Email:       "alice@example.com",
		ServiceType: "cleaning",
	})
	require.NoError(t, err)

	assert.True(t, dto.IsAvailable)
	assert.Equal(t, 5.0, dto.Rating)
	assert.Nil(t, dto.HourlyRate)
}

func TestUpdateProvider_PartialUpdate(t *testing.T) {
	svc, _ := newProviderServiceFixture()

	rate := 40.0
	created, err := svc.CreateProvider(context.Background(), CreateProviderRequest{
		Name:        "Alice Cleaner",
		Email:       "alice@example.com",
		ServiceType: "cleaning",
		HourlyRate:  &rate,
	})
	require.NoError(t, err)

	newRate := 55.0
	updated, err := svc.UpdateProvider(context.Background(), created.ID, UpdateProviderRequest{
		HourlyRate: &newRate,
	})
	require.NoError(t, err)

	assert.Equal(t, 55.0, *updated.HourlyRate)
	assert.Equal(t, "Alice Cleaner", updated.Name)
	assert.Equal(t, "cleaning", updated.ServiceType)
	assert.Equal(t, created.Version+1, updated.Version)
}

func TestUpdateProvider_RatingOnly(t *testing.T) {
	svc, _ := newProviderServiceFixture()

	created, err := svc.CreateProvider(context.Background(), CreateProviderRequest{
		Name:  "Alice Cleaner",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	rating := 3.8
	updated, err := svc.UpdateProvider(context.Background(), created.ID, UpdateProviderRequest{
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.8, updated.Rating)
}

func TestApplyReviewRating(t *testing.T) {
	svc, repo := newProviderServiceFixture()

	created, err := svc.CreateProvider(context.Background(), CreateProviderRequest{
		Name:  "Alice Cleaner",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyReviewRating(context.Background(), created.ID, 4.6))

	p, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.6, p.Rating())
}

func TestApplyReviewRating_UnknownProvider(t *testing.T) {
	svc, _ := newProviderServiceFixture()

	err := svc.ApplyReviewRating(context.Background(), uuid.New(), 4.0)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteProvider(t *testing.T) {
	svc, _ := newProviderServiceFixture()

	created, err := svc.CreateProvider(context.Background(), CreateProviderRequest{
		Name:  "Alice Cleaner",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProvider(context.Background(), created.ID))

	var notFound *domain.NotFoundError
	_, err = svc.GetProvider(context.Background(), created.ID)
	assert.ErrorAs(t, err, &notFound)
}
