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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// ListCategories handles GET /api/productcategory/listproductcategory (public)
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	params := listquery.ParseParams(r.URL.Query())

	categories, err := h.service.ListCategories(r.Context(), params)
	if err != nil {
		respondError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetCategoryByID handles GET /api/productcategory/categoryId/{id} (public)
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), categoryID)
	if err != nil {
		respondError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// CreateCategory handles POST /api/productcategory/addcategoryproduct (admin)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// UpdateCategory handles PATCH /api/productcategory/patchcategory/{id} (admin)
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	var req request.CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		respondError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// DeleteCategory handles DELETE /api/productcategory/deletecategory/{id} (admin).
// A category still referenced by products is a conflict, not a delete.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		respondError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
