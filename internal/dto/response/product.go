package response

import (
	"time"

	"warehouse-api/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Weight      int       `json:"weight"`
	CategoryID  string    `json:"product_categories_id"`
	Image       string    `json:"image"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductToResponse converts an entity; imageURL is resolved by the blob
// store the service was built with.
func ProductToResponse(product *entity.Product, imageURL string) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Weight:      product.Weight,
		CategoryID:  product.CategoryID.String(),
		Image:       product.Image,
		ImageURL:    imageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
