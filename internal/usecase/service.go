package usecase

import (
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/queue"
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Warehouse WarehouseService
	Category  CategoryService
	Product   ProductService
	Location  LocationService
}

func NewService(
	repo *repository.Repository,
	blobs storage.BlobStore,
	publisher queue.Publisher,
	redisClient *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, blobs, publisher, config, log),
		Warehouse: NewWarehouseService(repo, log),
		Category:  NewCategoryService(repo, log),
		Product:   NewProductService(repo, blobs, log),
		Location:  NewLocationService(repo, redisClient, log),
	}
}
