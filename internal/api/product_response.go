package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID          string    `json:"id" example:"6ba7b810-9dad-4d1a-80b4-00c04fd430c8"`
	Name        string    `json:"name" example:"Ceramic mug"`
	Description string    `json:"description" example:"Hand glazed, 350ml"`
	Price       float64   `json:"price" example:"12.50"`
	ImageURL    string    `json:"image_url" example:"https://media.example.com/products/abc.jpg"`
	VendorID    string    `json:"vendor_id" example:"8f14e45f-ea1a-4f3a-9a6b-0c0f8d2d4e61"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		VendorID:    p.VendorID,
		Status:      p.Status(),
		CreatedAt:   p.CreatedAt,
	}
}

func NewProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
