package service

import (
	"context"
	"testing"

	"kindalike-be/internal/dto"
	"kindalike-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceService(t *testing.T) IPreferenceService {
	t.Helper()
	return NewPreferenceService(unitofwork.NewRepositoryFactory(newTestDB(t)))
}

func TestPreferenceSaveAndGet(t *testing.T) {
	svc := newPreferenceService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, &dto.PreferenceRequest{
		CuisineType:         "Italian",
		PriceRange:          "$$",
		DiningStyle:         "casual",
		DietaryRestrictions: "vegetarian",
		Atmosphere:          "quiet",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.Id)
	assert.Equal(t, uint(1), saved.UserId)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved.Id, got.Id)
	assert.Equal(t, "Italian", got.CuisineType)
	assert.Equal(t, "$$", got.PriceRange)
}

func TestPreferenceSave_OverwritesWholesale(t *testing.T) {
	svc := newPreferenceService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, 1, &dto.PreferenceRequest{
		CuisineType: "Italian",
		PriceRange:  "$$$",
		Atmosphere:  "lively",
	})
	require.NoError(t, err)

	// A resubmission with a field left blank clears that field.
	second, err := svc.Save(ctx, 1, &dto.PreferenceRequest{
		CuisineType: "Mexican",
	})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mexican", got.CuisineType)
	assert.Empty(t, got.PriceRange)
	assert.Empty(t, got.Atmosphere)
}

func TestPreferenceGet_NotFound(t *testing.T) {
	svc := newPreferenceService(t)

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPreferencesNotFound)
}

func TestPreferenceSave_PerUserRows(t *testing.T) {
	svc := newPreferenceService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, 1, &dto.PreferenceRequest{CuisineType: "Thai"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, 2, &dto.PreferenceRequest{CuisineType: "Indian"})
	require.NoError(t, err)

	one, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	two, err := svc.Get(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, "Thai", one.CuisineType)
	assert.Equal(t, "Indian", two.CuisineType)
}
