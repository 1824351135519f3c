package usecase

import (
	"context"
	"fmt"
	"time"

	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/dto/response"
	"warehouse-api/pkg/cache"
	"warehouse-api/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// locationCacheTTL keeps the administrative registry hot without holding on
// to stale imports for long.
const locationCacheTTL = 12 * time.Hour

type LocationService interface {
	GetProvinces(ctx context.Context) ([]response.ProvinceResponse, error)
	GetCities(ctx context.Context, provinceID int64) ([]response.CityResponse, error)
	GetDistricts(ctx context.Context, cityID int64) ([]response.DistrictResponse, error)
}

type locationService struct {
	repo  *repository.Repository
	redis *redis.Client
	log   *zap.Logger
}

func NewLocationService(repo *repository.Repository, redisClient *redis.Client, log *zap.Logger) LocationService {
	return &locationService{
		repo:  repo,
		redis: redisClient,
		log:   log.With(zap.String("service", "location")),
	}
}

func (s *locationService) GetProvinces(ctx context.Context) ([]response.ProvinceResponse, error) {
	const key = "locations:provinces"

	var cached []response.ProvinceResponse
	if cache.GetJSON(ctx, s.redis, key, &cached) {
		return cached, nil
	}

	provinces, err := s.repo.Location.FindProvinces(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get provinces", err)
	}

	rows := response.ProvincesToResponse(provinces)
	cache.SetJSON(ctx, s.redis, key, rows, locationCacheTTL)
	return rows, nil
}

func (s *locationService) GetCities(ctx context.Context, provinceID int64) ([]response.CityResponse, error) {
	key := fmt.Sprintf("locations:cities:%d", provinceID)

	var cached []response.CityResponse
	if cache.GetJSON(ctx, s.redis, key, &cached) {
		return cached, nil
	}

	cities, err := s.repo.Location.FindCitiesByProvince(ctx, provinceID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get cities", err)
	}

	rows := response.CitiesToResponse(cities)
	cache.SetJSON(ctx, s.redis, key, rows, locationCacheTTL)
	return rows, nil
}

func (s *locationService) GetDistricts(ctx context.Context, cityID int64) ([]response.DistrictResponse, error) {
	key := fmt.Sprintf("locations:districts:%d", cityID)

	var cached []response.DistrictResponse
	if cache.GetJSON(ctx, s.redis, key, &cached) {
		return cached, nil
	}

	districts, err := s.repo.Location.FindDistrictsByCity(ctx, cityID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to get districts", err)
	}

	rows := response.DistrictsToResponse(districts)
	cache.SetJSON(ctx, s.redis, key, rows, locationCacheTTL)
	return rows, nil
}
