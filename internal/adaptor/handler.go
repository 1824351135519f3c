package adaptor

import (
	"net/http"

	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Warehouse *WarehouseHandler
	Category  *CategoryHandler
	Product   *ProductHandler
	Location  *LocationHandler
	Image     *ImageHandler
}

func NewHandler(service *usecase.Service, blobs storage.BlobStore, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, config.Upload.MaxBytes, log),
		Warehouse: NewWarehouseHandler(service.Warehouse, log),
		Category:  NewCategoryHandler(service.Category, log),
		Product:   NewProductHandler(service.Product, config.Upload.MaxBytes, log),
		Location:  NewLocationHandler(service.Location, log),
		Image:     NewImageHandler(blobs, log),
	}
}

// respondError translates a service error into the JSON envelope. Expected
// failures are logged at warn with their own message; anything else becomes
// a generic 500 so internals never leak to the caller.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := utils.AsAppError(err)

	if appErr.Kind == utils.KindInternal {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
	)

	var errors any
	if len(appErr.Fields) > 0 {
		errors = appErr.Fields
	}
	utils.ResponseJSON(w, appErr.HTTPStatus(), false, appErr.Message, nil, errors)
}
