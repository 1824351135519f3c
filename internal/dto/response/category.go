package response

import (
	"time"

	"warehouse-api/internal/data/entity"
)

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func CategoryToResponse(category *entity.ProductCategory) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func CategoriesToResponse(categories []*entity.ProductCategory) []CategoryResponse {
	rows := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		rows[i] = CategoryToResponse(category)
	}
	return rows
}
