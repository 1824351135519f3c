package usecase

import (
	"context"
	"testing"

	"warehouse-api/internal/dto/request"
	"warehouse-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategoryService_CreateUpdateDelete(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &request.CategoryRequest{
		Name:        "Electronics",
		Description: "Phones and accessories",
	})
	require.NoError(t, err)

	name := "Gadgets"
	updated, err := svc.UpdateCategory(ctx, created.ID, &request.CategoryUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", updated.Name)
	assert.Equal(t, "Phones and accessories", updated.Description)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	_, err = svc.GetCategoryByID(ctx, created.ID)
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}

func TestCategoryService_DeleteInUseConflicts(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &request.CategoryRequest{
		Name:        "Electronics",
		Description: "Phones and accessories",
	})
	require.NoError(t, err)

	categories := repo.Category.(*fakeCategoryRepo)
	categories.inUse[uuid.MustParse(created.ID)] = true

	err = svc.DeleteCategory(ctx, created.ID)

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindConflict, appErr.Kind)
	assert.Equal(t, "Category is still used by existing products", appErr.Message)

	// The category must survive the rejected delete.
	got, err := svc.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCategoryService_DeleteUnknown(t *testing.T) {
	svc := NewCategoryService(newTestRepository(), zap.NewNop())

	err := svc.DeleteCategory(context.Background(), uuid.NewString())
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}

func TestCategoryService_CreateValidation(t *testing.T) {
	svc := NewCategoryService(newTestRepository(), zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{})

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "Name")
}
