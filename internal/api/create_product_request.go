package api

// CreateProductRequest carries the text fields of the multipart form; the
// image part is read separately from the request.
//
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        string  `form:"name" validate:"required" example:"Ceramic mug"`
	Description string  `form:"description" validate:"required" example:"Hand glazed, 350ml"`
	Price       float64 `form:"price" validate:"required,gt=0" example:"12.50"`
}
