// Package products exposes the public, unauthenticated catalog endpoints.
package products

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// ListApprovedHandler returns the storefront catalog. The listing is
// served from the cache when present and refilled on a miss.
// @Summary     List approved products
// @Tags        products
// @Produce     json
// @Success     200 {array} api.ProductResponse
// @Router      /products [get]
func ListApprovedHandler(products store.ProductStore, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if cached, ok := cache.GetApprovedProducts(ctx, cch); ok {
			return c.JSON(http.StatusOK, api.NewProductResponses(cached))
		}

		list, err := products.ListApproved(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.SetApprovedProducts(ctx, cch, list)
		return c.JSON(http.StatusOK, api.NewProductResponses(list))
	}
}

// GetProductHandler returns one approved product. Pending products are
// invisible here regardless of who asks.
// @Summary     Get an approved product
// @Tags        products
// @Produce     json
// @Param       product_id path string true "product ID"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /products/{product_id} [get]
func GetProductHandler(products store.ProductStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		product, err := products.GetByID(c.Request().Context(), c.Param("product_id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !product.IsApproved {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}
