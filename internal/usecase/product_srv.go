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
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context, params listquery.Params, categoryID string) (*response.ListResponse[response.ProductResponse], error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest, image *utils.ImageFile) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	ChangeImage(ctx context.Context, productID string, image *utils.ImageFile) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo  *repository.Repository
	blobs storage.BlobStore
	log   *zap.Logger
}

func NewProductService(repo *repository.Repository, blobs storage.BlobStore, log *zap.Logger) ProductService {
	return &productService{
		repo:  repo,
		blobs: blobs,
		log:   log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListProducts(ctx context.Context, params listquery.Params, categoryID string) (*response.ListResponse[response.ProductResponse], error) {
	var categoryFilter *uuid.UUID
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, utils.NewValidationError(map[string]string{
				"category_id": "Must be a valid UUID",
			})
		}
		categoryFilter = &id
	}

	products, total, err := s.repo.Product.List(ctx, params, categoryFilter)
	if err != nil {
		return nil, utils.NewInternalError("Failed to list products", err)
	}

	rows := make([]response.ProductResponse, len(products))
	for i, product := range products {
		rows[i] = response.ProductToResponse(product, s.blobs.URL(product.Image))
	}

	return response.NewListResponse(rows, params.Page, params.Limit(), total), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get product", err)
	}
	if product == nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	resp := response.ProductToResponse(product, s.blobs.URL(product.Image))
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest, image *utils.ImageFile) (*response.ProductResponse, error) {
	if image == nil {
		return nil, utils.NewValidationError(map[string]string{
			"imageUrl": "Image is required",
		})
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.NewValidationError(map[string]string{
			"product_categories_id": "Must be a valid UUID",
		})
	}

	// Store the blob first so the record never references a missing image;
	// compensate with a delete when the insert does not commit.
	blobName := uuid.NewString() + image.Ext
	if err := s.blobs.Put(ctx, blobName, image.Data, image.ContentType); err != nil {
		return nil, utils.NewInternalError("Failed to store product image", err)
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Weight:      req.Weight,
		CategoryID:  categoryID,
		Image:       blobName,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		if delErr := s.blobs.Delete(ctx, blobName); delErr != nil {
			s.log.Error("Failed to clean up product image after failed insert",
				zap.Error(delErr),
				zap.String("blob", blobName),
			)
		}

		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, utils.NewValidationError(map[string]string{
				"product_categories_id": "Product category not found",
			})
		}
		return nil, utils.NewInternalError("Failed to create product", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.String("image", blobName),
	)

	resp := response.ProductToResponse(product, s.blobs.URL(product.Image))
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get product", err)
	}
	if product == nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, utils.NewValidationError(map[string]string{
				"product_categories_id": "Must be a valid UUID",
			})
		}

		category, err := s.repo.Category.FindByID(ctx, categoryID)
		if err != nil {
			return nil, utils.NewInternalError("Failed to check product category", err)
		}
		if category == nil {
			return nil, utils.NewValidationError(map[string]string{
				"product_categories_id": "Product category not found",
			})
		}

		product.CategoryID = categoryID
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, utils.NewInternalError("Failed to update product", err)
	}

	resp := response.ProductToResponse(product, s.blobs.URL(product.Image))
	return &resp, nil
}

func (s *productService) ChangeImage(ctx context.Context, productID string, image *utils.ImageFile) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get product", err)
	}
	if product == nil {
		return nil, utils.NewNotFoundError("Product not found")
	}

	oldBlob := product.Image

	// New blob first; the old one is only removed once the reference update
	// has committed, so a failure never leaves the record without an image.
	newBlob := uuid.NewString() + image.Ext
	if err := s.blobs.Put(ctx, newBlob, image.Data, image.ContentType); err != nil {
		return nil, utils.NewInternalError("Failed to store product image", err)
	}

	if err := s.repo.Product.UpdateImage(ctx, id, newBlob); err != nil {
		if delErr := s.blobs.Delete(ctx, newBlob); delErr != nil {
			s.log.Error("Failed to clean up replacement image",
				zap.Error(delErr),
				zap.String("blob", newBlob),
			)
		}
		return nil, utils.NewInternalError("Failed to update product image", err)
	}

	if oldBlob != "" && oldBlob != newBlob {
		if err := s.blobs.Delete(ctx, oldBlob); err != nil {
			// Orphaned blob, not a failed request.
			s.log.Warn("Failed to delete replaced product image",
				zap.Error(err),
				zap.String("blob", oldBlob),
			)
		}
	}

	product.Image = newBlob
	product.UpdatedAt = time.Now()

	s.log.Info("Product image changed",
		zap.String("product_id", productID),
		zap.String("image", newBlob),
	)

	resp := response.ProductToResponse(product, s.blobs.URL(newBlob))
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return utils.NewNotFoundError("Product not found")
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Failed to get product", err)
	}
	if product == nil {
		return utils.NewNotFoundError("Product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return utils.NewInternalError("Failed to delete product", err)
	}

	// Soft delete keeps the blob; the record may be restored.
	return nil
}
