package service

import (
	"context"
	"testing"

	"campwise/internal/apperr"
	"campwise/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCampsiteService(t *testing.T) *CampsiteService {
	return NewCampsiteService(repository.NewCampsiteRepository(newTestDB(t)), zap.NewNop())
}

func campsiteNames(t *testing.T, svc *CampsiteService, q CampsiteQuery) []string {
	t.Helper()
	campsites, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	names := make([]string, 0, len(campsites))
	for _, c := range campsites {
		names = append(names, c.Name)
	}
	return names
}

func TestCampsiteSearch(t *testing.T) {
	svc := newCampsiteService(t)

	assert.Len(t, campsiteNames(t, svc, CampsiteQuery{}), 5)
	assert.Equal(t, []string{"Lake Moke Campsite", "Queenstown Lakeview"},
		campsiteNames(t, svc, CampsiteQuery{MinRating: 4.6}))
	assert.Equal(t, []string{"Glenorchy Forest Retreat"},
		campsiteNames(t, svc, CampsiteQuery{Keyword: "FOREST"}))
	assert.Equal(t, []string{"Lake Moke Campsite", "Glenorchy Forest Retreat"},
		campsiteNames(t, svc, CampsiteQuery{Tags: []string{"Free", "Pet Friendly"}}))
	assert.Equal(t, []string{"Queenstown Lakeview"},
		campsiteNames(t, svc, CampsiteQuery{Keyword: "lake", MinRating: 4.5, Tags: []string{"Wifi"}}))
}

func TestCampsiteSearchValidatesRating(t *testing.T) {
	svc := newCampsiteService(t)
	_, err := svc.Search(context.Background(), CampsiteQuery{MinRating: 6})
	assert.True(t, apperr.Is(err, apperr.TypeValidation))
}

func TestCampsiteGet(t *testing.T) {
	svc := newCampsiteService(t)

	c, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Twelve Mile Delta", c.Name)
	assert.Equal(t, []string{"Paid", "Showers", "Toilets", "Beach"}, c.Tags)
	assert.Equal(t, 67.0, c.Left)

	_, err = svc.Get(context.Background(), 99)
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))
}

func TestCampsiteToggleSaved(t *testing.T) {
	svc := newCampsiteService(t)
	ctx := context.Background()

	saved, added, err := svc.ToggleSaved(ctx, "Lake Moke Campsite")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Lake Moke Campsite"}, saved)

	_, _, err = svc.ToggleSaved(ctx, "Twelve Mile Delta")
	require.NoError(t, err)
	saved, added, err = svc.ToggleSaved(ctx, "Lake Moke Campsite")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"Twelve Mile Delta"}, saved)

	stored, err := svc.Saved(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, stored)

	_, _, err = svc.ToggleSaved(ctx, " ")
	assert.True(t, apperr.Is(err, apperr.TypeValidation))
}

func TestCampsitePresetsAndFilters(t *testing.T) {
	svc := newCampsiteService(t)

	filters, err := svc.ApplyPreset("Remote spots with good signal")
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote", "Wifi", "4G Signal"}, filters)

	_, err = svc.ApplyPreset("unknown")
	assert.True(t, apperr.Is(err, apperr.TypeNotFound))

	active := svc.ToggleFilter(nil, "Free")
	active = svc.ToggleFilter(active, "Lake")
	assert.Equal(t, []string{"Free", "Lake"}, active)
	assert.Equal(t, []string{"Lake"}, svc.ToggleFilter(active, "Free"))

	assert.Len(t, svc.FilterCategories(), 4)
	assert.NotEmpty(t, svc.SmartPresets())
}
