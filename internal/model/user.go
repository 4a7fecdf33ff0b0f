// File: internal/model/user.go
package model

import "time"

// Role classifies an account. It is fixed at registration and never
// changes through this workflow.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
	RoleUser   Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	IsApproved   bool      `bson:"is_approved" json:"is_approved"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
