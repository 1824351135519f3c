package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warehouse-api/internal/dto/request"
	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/listquery"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service  usecase.ProductService
	maxBytes int64
	log      *zap.Logger
}

func NewProductHandler(service usecase.ProductService, maxBytes int64, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		maxBytes: maxBytes,
		log:      log.With(zap.String("handler", "product")),
	}
}

// ListProducts handles GET /api/product/listproduct (public)
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := listquery.ParseParams(query)

	products, err := h.service.ListProducts(r.Context(), params, query.Get("category_id"))
	if err != nil {
		respondError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProductByID handles GET /api/product/productId/{id} (public)
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		respondError(w, h.log, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// CreateProduct handles POST /api/product/addproduct (admin). The body is
// multipart: text fields plus the image under the "images" part.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	image, uploadErr := utils.ReadImageFile(r, "images", "imageUrl", h.maxBytes)
	if uploadErr != nil {
		respondError(w, h.log, uploadErr, "create product")
		return
	}

	req, fieldErrs := parseProductForm(r)
	if len(fieldErrs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", fieldErrs)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req, image)
	if err != nil {
		respondError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// parseProductForm binds the text parts of the multipart create form.
// Numeric parse failures are reported per field, same shape as struct
// validation errors.
func parseProductForm(r *http.Request) (*request.ProductRequest, map[string]string) {
	fieldErrs := make(map[string]string)

	req := &request.ProductRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		CategoryID:  r.FormValue("product_categories_id"),
	}

	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrs["price"] = "Price must be a number"
		}
		req.Price = price
	}

	if raw := r.FormValue("weight"); raw != "" {
		weight, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs["weight"] = "Weight must be a number"
		}
		req.Weight = weight
	}

	return req, fieldErrs
}

// UpdateProduct handles PATCH /api/product/patchproduct/{id} (admin).
// Plain JSON; the image has its own endpoint.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	var req request.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		respondError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// ChangeImage handles PATCH /api/product/changeimage/{id} (admin)
func (h *ProductHandler) ChangeImage(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	image, uploadErr := utils.ReadImageFile(r, "images", "imageUrl", h.maxBytes)
	if uploadErr != nil {
		respondError(w, h.log, uploadErr, "change product image")
		return
	}

	product, err := h.service.ChangeImage(r.Context(), productID, image)
	if err != nil {
		respondError(w, h.log, err, "change product image")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// DeleteProduct handles DELETE /api/product/deleteproduct/{id} (admin)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		respondError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
