package adaptor

import (
	"net/http"

	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/utils"

	"go.uber.org/zap"
)

type LocationHandler struct {
	service usecase.LocationService
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		log:     log.With(zap.String("handler", "location")),
	}
}

// GetProvinces handles GET /api/warehouse/getProvinceData (public)
func (h *LocationHandler) GetProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.service.GetProvinces(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get provinces")
		return
	}

	utils.ResponseSuccess(w, "success", provinces)
}

// GetCities handles GET /api/warehouse/getCityData?province_id= (public)
func (h *LocationHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	provinceID := utils.ParseInt64(r.URL.Query().Get("province_id"), 0)
	if provinceID <= 0 {
		utils.ResponseBadRequest(w, "province_id is required", nil)
		return
	}

	cities, err := h.service.GetCities(r.Context(), provinceID)
	if err != nil {
		respondError(w, h.log, err, "get cities")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}

// GetDistricts handles GET /api/warehouse/getDistrictData?city_id= (public)
func (h *LocationHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	cityID := utils.ParseInt64(r.URL.Query().Get("city_id"), 0)
	if cityID <= 0 {
		utils.ResponseBadRequest(w, "city_id is required", nil)
		return
	}

	districts, err := h.service.GetDistricts(r.Context(), cityID)
	if err != nil {
		respondError(w, h.log, err, "get districts")
		return
	}

	utils.ResponseSuccess(w, "success", districts)
}
