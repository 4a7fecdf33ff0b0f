package api

// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" example:"Ceramic mug"`
	Description *string  `json:"description,omitempty" example:"Hand glazed, 350ml"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0" example:"14.00"`
}
