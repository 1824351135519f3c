package usecase

import (
	"context"
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

type WarehouseService interface {
	GetAllWarehouses(ctx context.Context) ([]response.WarehouseResponse, error)
	ListWarehouses(ctx context.Context, params listquery.Params) (*response.ListResponse[response.WarehouseResponse], error)
	GetWarehouseByID(ctx context.Context, warehouseID string) (*response.WarehouseResponse, error)
	CreateWarehouse(ctx context.Context, req *request.WarehouseRequest) (*response.WarehouseResponse, error)
	UpdateWarehouse(ctx context.Context, warehouseID string, req *request.WarehouseUpdateRequest) (*response.WarehouseResponse, error)
	DeleteWarehouse(ctx context.Context, warehouseID string) error
}

type warehouseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWarehouseService(repo *repository.Repository, log *zap.Logger) WarehouseService {
	return &warehouseService{
		repo: repo,
		log:  log.With(zap.String("service", "warehouse")),
	}
}

func (s *warehouseService) GetAllWarehouses(ctx context.Context) ([]response.WarehouseResponse, error) {
	warehouses, err := s.repo.Warehouse.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get warehouses", err)
	}

	return response.WarehousesToResponse(warehouses), nil
}

func (s *warehouseService) ListWarehouses(ctx context.Context, params listquery.Params) (*response.ListResponse[response.WarehouseResponse], error) {
	warehouses, total, err := s.repo.Warehouse.List(ctx, params)
	if err != nil {
		return nil, utils.NewInternalError("Failed to list warehouses", err)
	}

	s.log.Debug("Warehouses listed",
		zap.Int("count", len(warehouses)),
		zap.Int64("total", total),
		zap.Int("page", params.Page),
	)

	return response.NewListResponse(response.WarehousesToResponse(warehouses), params.Page, params.Limit(), total), nil
}

func (s *warehouseService) GetWarehouseByID(ctx context.Context, warehouseID string) (*response.WarehouseResponse, error) {
	id, err := uuid.Parse(warehouseID)
	if err != nil {
		return nil, utils.NewNotFoundError("Warehouse not found")
	}

	warehouse, err := s.repo.Warehouse.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get warehouse", err)
	}
	if warehouse == nil {
		return nil, utils.NewNotFoundError("Warehouse not found")
	}

	resp := response.WarehouseToResponse(warehouse)
	return &resp, nil
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, req *request.WarehouseRequest) (*response.WarehouseResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create warehouse validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	if err := s.checkLocation(ctx, req.Province, req.City, req.District); err != nil {
		return nil, err
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Address:  req.Address,
		Province: req.Province,
		City:     req.City,
		District: req.District,
	}

	if err := s.repo.Warehouse.Create(ctx, warehouse); err != nil {
		return nil, utils.NewInternalError("Failed to create warehouse", err)
	}

	s.log.Info("Warehouse created",
		zap.String("warehouse_id", warehouse.ID.String()),
		zap.String("name", warehouse.Name),
	)

	resp := response.WarehouseToResponse(warehouse)
	return &resp, nil
}

func (s *warehouseService) UpdateWarehouse(ctx context.Context, warehouseID string, req *request.WarehouseUpdateRequest) (*response.WarehouseResponse, error) {
	id, err := uuid.Parse(warehouseID)
	if err != nil {
		return nil, utils.NewNotFoundError("Warehouse not found")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	warehouse, err := s.repo.Warehouse.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get warehouse", err)
	}
	if warehouse == nil {
		return nil, utils.NewNotFoundError("Warehouse not found")
	}

	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}

	locationChanged := req.Province != nil || req.City != nil || req.District != nil
	if req.Province != nil {
		warehouse.Province = *req.Province
	}
	if req.City != nil {
		warehouse.City = *req.City
	}
	if req.District != nil {
		warehouse.District = *req.District
	}

	// The merged triple must still be a valid registry entry.
	if locationChanged {
		if err := s.checkLocation(ctx, warehouse.Province, warehouse.City, warehouse.District); err != nil {
			return nil, err
		}
	}

	warehouse.UpdatedAt = time.Now()

	if err := s.repo.Warehouse.Update(ctx, warehouse); err != nil {
		return nil, utils.NewInternalError("Failed to update warehouse", err)
	}

	s.log.Info("Warehouse updated", zap.String("warehouse_id", warehouseID))

	resp := response.WarehouseToResponse(warehouse)
	return &resp, nil
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, warehouseID string) error {
	id, err := uuid.Parse(warehouseID)
	if err != nil {
		return utils.NewNotFoundError("Warehouse not found")
	}

	warehouse, err := s.repo.Warehouse.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Failed to get warehouse", err)
	}
	if warehouse == nil {
		return utils.NewNotFoundError("Warehouse not found")
	}

	if err := s.repo.Warehouse.Delete(ctx, id); err != nil {
		return utils.NewInternalError("Failed to delete warehouse", err)
	}

	return nil
}

func (s *warehouseService) checkLocation(ctx context.Context, province, city, district string) error {
	exists, err := s.repo.Location.LocationExists(ctx, province, city, district)
	if err != nil {
		return utils.NewInternalError("Failed to check location", err)
	}
	if !exists {
		return utils.NewValidationError(map[string]string{
			"district": "Province, city and district do not match the location registry",
		})
	}
	return nil
}
