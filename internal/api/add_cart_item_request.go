package api

// swagger:model api.AddCartItemRequest
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required" example:"6ba7b810-9dad-4d1a-80b4-00c04fd430c8"`
	Quantity  int    `json:"quantity" validate:"required,gt=0" example:"2"`
}
