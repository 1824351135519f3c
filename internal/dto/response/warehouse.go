package response

import (
	"time"

	"warehouse-api/internal/data/entity"
)

type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Province  string    `json:"province"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converters
func WarehouseToResponse(warehouse *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        warehouse.ID.String(),
		Name:      warehouse.Name,
		Address:   warehouse.Address,
		Province:  warehouse.Province,
		City:      warehouse.City,
		District:  warehouse.District,
		CreatedAt: warehouse.CreatedAt,
		UpdatedAt: warehouse.UpdatedAt,
	}
}

func WarehousesToResponse(warehouses []*entity.Warehouse) []WarehouseResponse {
	rows := make([]WarehouseResponse, len(warehouses))
	for i, warehouse := range warehouses {
		rows[i] = WarehouseToResponse(warehouse)
	}
	return rows
}
