package request

type WarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Address  string `json:"address" validate:"required,min=1,max=255"`
	Province string `json:"province" validate:"required"`
	City     string `json:"city" validate:"required"`
	District string `json:"district" validate:"required"`
}

type WarehouseUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	Province *string `json:"province,omitempty" validate:"omitempty,min=1"`
	City     *string `json:"city,omitempty" validate:"omitempty,min=1"`
	District *string `json:"district,omitempty" validate:"omitempty,min=1"`
}
