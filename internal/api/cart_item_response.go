package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.CartItemResponse
type CartItemResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity" example:"2"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCartItemResponses(items []model.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}
