package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The registry endpoints must work with no Redis at all; the nil client
// makes every cache call a miss.
func TestLocationService_WorksWithoutRedis(t *testing.T) {
	svc := NewLocationService(newTestRepository(), nil, zap.NewNop())
	ctx := context.Background()

	provinces, err := svc.GetProvinces(ctx)
	require.NoError(t, err)
	require.Len(t, provinces, 1)
	assert.Equal(t, "DKI Jakarta", provinces[0].Name)

	cities, err := svc.GetCities(ctx, provinces[0].ID)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, provinces[0].ID, cities[0].ProvinceID)

	districts, err := svc.GetDistricts(ctx, cities[0].ID)
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, cities[0].ID, districts[0].CityID)
}
