// Package auth exposes the registration and login endpoints.
package auth

import (
	"time"

	"storefront/internal/service"
)

const tokenTTL = 48 * time.Hour

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)
