package repository

import (
	"context"
	"fmt"

	"warehouse-api/internal/data/entity"
	"warehouse-api/pkg/database"

	"go.uber.org/zap"
)

// LocationRepository reads the province/city/district registry. The tables
// are reference data loaded by migration seeders and never written here.
type LocationRepository interface {
	FindProvinces(ctx context.Context) ([]*entity.Province, error)
	FindCitiesByProvince(ctx context.Context, provinceID int64) ([]*entity.City, error)
	FindDistrictsByCity(ctx context.Context, cityID int64) ([]*entity.District, error)
	// LocationExists checks that the named district belongs to the named
	// city which belongs to the named province.
	LocationExists(ctx context.Context, province, city, district string) (bool, error)
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (r *locationRepository) FindProvinces(ctx context.Context) ([]*entity.Province, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM provinces ORDER BY name ASC`)
	if err != nil {
		r.log.Error("Failed to find provinces", zap.Error(err))
		return nil, fmt.Errorf("failed to find provinces: %w", err)
	}
	defer rows.Close()

	var provinces []*entity.Province
	for rows.Next() {
		var province entity.Province
		if err := rows.Scan(&province.ID, &province.Name); err != nil {
			return nil, fmt.Errorf("failed to scan province: %w", err)
		}
		provinces = append(provinces, &province)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return provinces, nil
}

func (r *locationRepository) FindCitiesByProvince(ctx context.Context, provinceID int64) ([]*entity.City, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, province_id, name FROM cities WHERE province_id = $1 ORDER BY name ASC`,
		provinceID,
	)
	if err != nil {
		r.log.Error("Failed to find cities",
			zap.Error(err),
			zap.Int64("province_id", provinceID),
		)
		return nil, fmt.Errorf("failed to find cities: %w", err)
	}
	defer rows.Close()

	var cities []*entity.City
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.ProvinceID, &city.Name); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return cities, nil
}

func (r *locationRepository) FindDistrictsByCity(ctx context.Context, cityID int64) ([]*entity.District, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, city_id, name FROM districts WHERE city_id = $1 ORDER BY name ASC`,
		cityID,
	)
	if err != nil {
		r.log.Error("Failed to find districts",
			zap.Error(err),
			zap.Int64("city_id", cityID),
		)
		return nil, fmt.Errorf("failed to find districts: %w", err)
	}
	defer rows.Close()

	var districts []*entity.District
	for rows.Next() {
		var district entity.District
		if err := rows.Scan(&district.ID, &district.CityID, &district.Name); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, &district)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return districts, nil
}

func (r *locationRepository) LocationExists(ctx context.Context, province, city, district string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM districts d
			JOIN cities c ON c.id = d.city_id
			JOIN provinces p ON p.id = c.province_id
			WHERE p.name = $1 AND c.name = $2 AND d.name = $3
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, province, city, district).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check location",
			zap.Error(err),
			zap.String("province", province),
			zap.String("city", city),
			zap.String("district", district),
		)
		return false, fmt.Errorf("failed to check location: %w", err)
	}

	return exists, nil
}
