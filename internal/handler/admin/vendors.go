// Package admin exposes the moderation endpoints: vendor approval, the
// product review queue, and account removal.
package admin

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// ListVendorsHandler returns every vendor account.
// @Summary     List vendors
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Security    ApiKeyAuth
// @Router      /admin/vendors [get]
func ListVendorsHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := users.ListByRole(c.Request().Context(), model.RoleVendor)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(list))
	}
}

// ApproveVendorHandler marks a vendor account approved. Approving twice
// is harmless.
// @Summary     Approve a vendor
// @Tags        admin
// @Produce     json
// @Param       vendor_id path string true "vendor ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/vendors/{vendor_id}/approve [put]
func ApproveVendorHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := users.SetApproved(c.Request().Context(), c.Param("vendor_id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "vendor not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "vendor approved"})
	}
}

// DeleteVendorHandler removes a vendor account along with its catalog,
// so no orphaned products linger in the public listing.
// @Summary     Delete a vendor
// @Tags        admin
// @Produce     json
// @Param       vendor_id path string true "vendor ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/vendors/{vendor_id} [delete]
func DeleteVendorHandler(users store.UserStore, products store.ProductStore, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		vendorID := c.Param("vendor_id")

		list, err := products.ListByVendor(ctx, vendorID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		for _, p := range list {
			if err := products.Delete(ctx, p.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		if err := users.Delete(ctx, vendorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "vendor not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.InvalidateApprovedProducts(ctx, cch)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "vendor deleted"})
	}
}
