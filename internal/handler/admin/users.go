package admin

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler returns every shopper account.
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func ListUsersHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := users.ListByRole(c.Request().Context(), model.RoleUser)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(list))
	}
}

// DeleteUserHandler removes a shopper account.
// @Summary     Delete a user
// @Tags        admin
// @Produce     json
// @Param       user_id path string true "user ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users/{user_id} [delete]
func DeleteUserHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := users.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
	}
}
