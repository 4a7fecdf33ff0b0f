package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.OrderItemResponse
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	VendorID  string  `json:"vendor_id"`
	Name      string  `json:"name" example:"Ceramic mug"`
	Price     float64 `json:"price" example:"12.50"`
	Quantity  int     `json:"quantity" example:"2"`
}

// swagger:model api.OrderResponse
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"items"`
	Total     float64             `json:"total" example:"25.00"`
	Status    model.OrderStatus   `json:"status" example:"placed"`
	CreatedAt time.Time           `json:"created_at"`
}

func NewOrderResponse(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			VendorID:  it.VendorID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
