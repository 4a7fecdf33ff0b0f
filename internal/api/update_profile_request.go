package api

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}
