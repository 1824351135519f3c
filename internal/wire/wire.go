package wire

import (
	"net/http"

	"warehouse-api/internal/adaptor"
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/queue"
	"warehouse-api/internal/usecase"
	"warehouse-api/pkg/middleware"
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(
	repo *repository.Repository,
	blobs storage.BlobStore,
	publisher queue.Publisher,
	redisClient *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, blobs, publisher, redisClient, config, logger)
	handler := adaptor.NewHandler(service, blobs, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireWarehouse(r, handler.Warehouse, handler.Location, config, logger)
	wireCategory(r, handler.Category, config, logger)
	wireProduct(r, handler.Product, config, logger)

	// Uploaded images (disk driver)
	r.Get("/images/{name}", handler.Image.Serve)

	// Operational endpoints
	r.Handle("/metrics", middleware.MetricsHandler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
