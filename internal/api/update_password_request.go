package api

// swagger:model api.UpdatePasswordRequest
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required" example:"OldSecret123!"`
	NewPassword     string `json:"new_password" validate:"required,min=6" example:"NewSecret456!"`
}
