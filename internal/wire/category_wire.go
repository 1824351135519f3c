package wire

import (
	"warehouse-api/internal/adaptor"
	"warehouse-api/pkg/middleware"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/productcategory/listproductcategory", categoryHandler.ListCategories)
	r.Get("/api/productcategory/categoryId/{id}", categoryHandler.GetCategoryByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/productcategory/addcategoryproduct", categoryHandler.CreateCategory)
		r.Patch("/api/productcategory/patchcategory/{id}", categoryHandler.UpdateCategory)
		r.Delete("/api/productcategory/deletecategory/{id}", categoryHandler.DeleteCategory)
	})
}
