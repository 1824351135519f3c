package adaptor

import (
	"encoding/json"
	"net/http"

	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WarehouseHandler struct {
	service usecase.WarehouseService
	log     *zap.Logger
}

func NewWarehouseHandler(service usecase.WarehouseService, log *zap.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
		log:     log.With(zap.String("handler", "warehouse")),
	}
}

// GetAllWarehouses handles GET /api/warehouse/getAllWarehouse (public).
// Returns the whole set unpaginated, for dropdowns.
func (h *WarehouseHandler) GetAllWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.service.GetAllWarehouses(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get all warehouses")
		return
	}

	utils.ResponseSuccess(w, "success", warehouses)
}

// ListWarehouses handles GET /api/warehouse/getWarehouseData (public)
func (h *WarehouseHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	params := listquery.ParseParams(r.URL.Query())

	warehouses, err := h.service.ListWarehouses(r.Context(), params)
	if err != nil {
		respondError(w, h.log, err, "list warehouses")
		return
	}

	utils.ResponseSuccess(w, "success", warehouses)
}

// GetWarehouseByID handles GET /api/warehouse/getWarehouseDetails/{id} (public)
func (h *WarehouseHandler) GetWarehouseByID(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "id")
	if warehouseID == "" {
		utils.ResponseBadRequest(w, "Warehouse ID is required", nil)
		return
	}

	warehouse, err := h.service.GetWarehouseByID(r.Context(), warehouseID)
	if err != nil {
		respondError(w, h.log, err, "get warehouse by ID")
		return
	}

	utils.ResponseSuccess(w, "success", warehouse)
}

// CreateWarehouse handles POST /api/warehouse/addWarehouse (admin)
func (h *WarehouseHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req request.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	warehouse, err := h.service.CreateWarehouse(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create warehouse")
		return
	}

	utils.ResponseCreated(w, "success", warehouse)
}

// UpdateWarehouse handles PATCH /api/warehouse/updateWarehouseData/{id} (admin)
func (h *WarehouseHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "id")
	if warehouseID == "" {
		utils.ResponseBadRequest(w, "Warehouse ID is required", nil)
		return
	}

	var req request.WarehouseUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	warehouse, err := h.service.UpdateWarehouse(r.Context(), warehouseID, &req)
	if err != nil {
		respondError(w, h.log, err, "update warehouse")
		return
	}

	utils.ResponseSuccess(w, "success", warehouse)
}

// DeleteWarehouse handles DELETE /api/warehouse/deleteWarehouseData/{id} (admin)
func (h *WarehouseHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "id")
	if warehouseID == "" {
		utils.ResponseBadRequest(w, "Warehouse ID is required", nil)
		return
	}

	if err := h.service.DeleteWarehouse(r.Context(), warehouseID); err != nil {
		respondError(w, h.log, err, "delete warehouse")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
