package api

// swagger:model api.OrderStatusRequest
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=placed shipped delivered cancelled" example:"shipped"`
}
