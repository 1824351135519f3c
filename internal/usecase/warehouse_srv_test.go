package usecase

import (
	"context"
	"testing"

	"warehouse-api/internal/dto/request"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validWarehouseRequest() *request.WarehouseRequest {
	return &request.WarehouseRequest{
		Name:     "Gudang Selatan",
		Address:  "Jl. Sudirman No. 1",
		Province: "DKI Jakarta",
		City:     "Jakarta Selatan",
		District: "Kebayoran Baru",
	}
}

func TestWarehouseService_CreateAndGet(t *testing.T) {
	repo := newTestRepository()
	svc := NewWarehouseService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateWarehouse(ctx, validWarehouseRequest())
	require.NoError(t, err)
	assert.Equal(t, "Gudang Selatan", created.Name)

	got, err := svc.GetWarehouseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestWarehouseService_CreateMissingFields(t *testing.T) {
	svc := NewWarehouseService(newTestRepository(), zap.NewNop())

	_, err := svc.CreateWarehouse(context.Background(), &request.WarehouseRequest{})

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "Name")
	assert.Contains(t, appErr.Fields, "Province")
}

func TestWarehouseService_CreateUnknownLocation(t *testing.T) {
	svc := NewWarehouseService(newTestRepository(), zap.NewNop())

	req := validWarehouseRequest()
	req.District = "Atlantis"

	_, err := svc.CreateWarehouse(context.Background(), req)

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "district")
}

func TestWarehouseService_UpdateRevalidatesMergedLocation(t *testing.T) {
	repo := newTestRepository()
	svc := NewWarehouseService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateWarehouse(ctx, validWarehouseRequest())
	require.NoError(t, err)

	// Changing only the district breaks the merged triple.
	badDistrict := "Atlantis"
	_, err = svc.UpdateWarehouse(ctx, created.ID, &request.WarehouseUpdateRequest{District: &badDistrict})

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)

	// A name-only update must not re-check the registry.
	name := "Gudang Utama"
	updated, err := svc.UpdateWarehouse(ctx, created.ID, &request.WarehouseUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Gudang Utama", updated.Name)
}

func TestWarehouseService_GetUnknownID(t *testing.T) {
	svc := NewWarehouseService(newTestRepository(), zap.NewNop())

	_, err := svc.GetWarehouseByID(context.Background(), "not-a-uuid")
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)

	_, err = svc.GetWarehouseByID(context.Background(), "6d7a6f3e-0c1b-4a7e-9f1d-2b3c4d5e6f70")
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}

func TestWarehouseService_DeleteThenGone(t *testing.T) {
	repo := newTestRepository()
	svc := NewWarehouseService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateWarehouse(ctx, validWarehouseRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWarehouse(ctx, created.ID))

	_, err = svc.GetWarehouseByID(ctx, created.ID)
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)

	err = svc.DeleteWarehouse(ctx, created.ID)
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}

func TestWarehouseService_ListShape(t *testing.T) {
	repo := newTestRepository()
	svc := NewWarehouseService(repo, zap.NewNop())
	ctx := context.Background()

	list, err := svc.ListWarehouses(ctx, listquery.Params{Page: 0, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, list.Rows)
	assert.Empty(t, list.Rows)
	assert.Equal(t, 0, list.TotalPages)

	_, err = svc.CreateWarehouse(ctx, validWarehouseRequest())
	require.NoError(t, err)

	list, err = svc.ListWarehouses(ctx, listquery.Params{Page: 0, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, list.Rows, 1)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 1, list.TotalPages)
}
