package wire

import (
	"warehouse-api/internal/adaptor"
	"warehouse-api/pkg/middleware"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/product/listproduct", productHandler.ListProducts)
	r.Get("/api/product/productId/{id}", productHandler.GetProductByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/product/addproduct", productHandler.CreateProduct)
		r.Patch("/api/product/patchproduct/{id}", productHandler.UpdateProduct)
		r.Patch("/api/product/changeimage/{id}", productHandler.ChangeImage)
		r.Delete("/api/product/deleteproduct/{id}", productHandler.DeleteProduct)
	})
}
