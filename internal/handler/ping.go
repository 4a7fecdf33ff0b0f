package handler

import (
	"context"
	"net/http"

	"storefront/internal/api"

	"github.com/labstack/echo/v4"
)

// PingHandler reports service health, including the datastore connection.
// @Summary     Health check
// @Description Returns pong when the service and its datastore are reachable
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(health func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := health(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "datastore unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
