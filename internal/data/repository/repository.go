package repository

import (
	"warehouse-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Warehouse WarehouseRepository
	Category  CategoryRepository
	Product   ProductRepository
	Location  LocationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Warehouse: NewWarehouseRepository(db, log),
		Category:  NewCategoryRepository(db, log),
		Product:   NewProductRepository(db, log),
		Location:  NewLocationRepository(db, log),
	}
}
