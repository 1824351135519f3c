package request

// ProductRequest carries the non-file fields of the multipart create form.
// The image itself travels as the "images" file part and is validated by the
// upload helper, not by struct tags.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"gte=0"`
	Weight      int     `json:"weight" validate:"gte=0"`
	CategoryID  string  `json:"product_categories_id" validate:"required,uuid"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Weight      *int     `json:"weight,omitempty" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"product_categories_id,omitempty" validate:"omitempty,uuid"`
}
