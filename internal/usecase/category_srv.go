package usecase

import (
	"context"
	"errors"
	"time"

	"warehouse-api/internal/data/entity"
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/dto/response"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	ListCategories(ctx context.Context, params listquery.Params) (*response.ListResponse[response.CategoryResponse], error)
	GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) ListCategories(ctx context.Context, params listquery.Params) (*response.ListResponse[response.CategoryResponse], error) {
	categories, total, err := s.repo.Category.List(ctx, params)
	if err != nil {
		return nil, utils.NewInternalError("Failed to list categories", err)
	}

	return response.NewListResponse(response.CategoriesToResponse(categories), params.Page, params.Limit(), total), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, utils.NewNotFoundError("Category not found")
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return nil, utils.NewNotFoundError("Category not found")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	now := time.Now()
	category := &entity.ProductCategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, utils.NewInternalError("Failed to create category", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, utils.NewNotFoundError("Category not found")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return nil, utils.NewNotFoundError("Category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, utils.NewInternalError("Failed to update category", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return utils.NewNotFoundError("Category not found")
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return utils.NewNotFoundError("Category not found")
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryInUse) {
			return utils.NewConflictError("Category is still used by existing products")
		}
		return utils.NewInternalError("Failed to delete category", err)
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID))
	return nil
}
