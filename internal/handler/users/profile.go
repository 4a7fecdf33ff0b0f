// Package users exposes the endpoints available to an authenticated shopper.
package users

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"storefront/internal/api"
	"storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
)

func claimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok
}

// GetProfileHandler returns the authenticated account.
// @Summary     Get my profile
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetProfileHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		user, err := users.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// UpdateProfileHandler changes the account email.
// @Summary     Update my profile
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.UpdateProfileRequest true "profile payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateProfileHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		if err := users.UpdateEmail(c.Request().Context(), claims.UserID, req.Email); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicateEmail):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "profile updated"})
	}
}

// UpdatePasswordHandler rotates the account password after checking the
// current one.
// @Summary     Change my password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.UpdatePasswordRequest true "password payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/password [put]
func UpdatePasswordHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		var req api.UpdatePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := users.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := comparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "current password is incorrect"})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := users.UpdatePassword(c.Request().Context(), claims.UserID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated"})
	}
}
