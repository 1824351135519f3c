package wire

import (
	"warehouse-api/internal/adaptor"
	"warehouse-api/pkg/middleware"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWarehouse(
	r chi.Router,
	warehouseHandler *adaptor.WarehouseHandler,
	locationHandler *adaptor.LocationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/warehouse/getAllWarehouse", warehouseHandler.GetAllWarehouses)
	r.Get("/api/warehouse/getWarehouseData", warehouseHandler.ListWarehouses)
	r.Get("/api/warehouse/getWarehouseDetails/{id}", warehouseHandler.GetWarehouseByID)

	// Administrative area registry, used by the warehouse address form
	r.Get("/api/warehouse/getProvinceData", locationHandler.GetProvinces)
	r.Get("/api/warehouse/getCityData", locationHandler.GetCities)
	r.Get("/api/warehouse/getDistrictData", locationHandler.GetDistricts)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/warehouse/addWarehouse", warehouseHandler.CreateWarehouse)
		r.Patch("/api/warehouse/updateWarehouseData/{id}", warehouseHandler.UpdateWarehouse)
		r.Delete("/api/warehouse/deleteWarehouseData/{id}", warehouseHandler.DeleteWarehouse)
	})
}
