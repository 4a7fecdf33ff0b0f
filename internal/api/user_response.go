package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID         string     `json:"id" example:"8f14e45f-ea1a-4f3a-9a6b-0c0f8d2d4e61"`
	Email      string     `json:"email" example:"alice@example.com"`
	Role       model.Role `json:"role" example:"vendor"`
	IsApproved bool       `json:"is_approved" example:"false"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
