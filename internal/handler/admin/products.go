package admin

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
)

// ListPendingProductsHandler returns the review queue.
// @Summary     List pending products
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.ProductResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/pending [get]
func ListPendingProductsHandler(products store.ProductStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := products.ListPending(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewProductResponses(list))
	}
}

// ApproveProductHandler publishes a product. The set is unconditional, so
// re-approving an already approved product succeeds and changes nothing.
// @Summary     Approve a product
// @Tags        admin
// @Produce     json
// @Param       product_id path string true "product ID"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{product_id}/approve [put]
func ApproveProductHandler(products store.ProductStore, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		product, err := products.SetApproved(c.Request().Context(), c.Param("product_id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.InvalidateApprovedProducts(c.Request().Context(), cch)
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}

// UpdateProductHandler edits any product regardless of owner. This is the
// unrestricted moderation path; approval state is untouched.
// @Summary     Update any product
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       product_id path string true "product ID"
// @Param       body body api.UpdateProductRequest true "fields to change"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{product_id} [put]
func UpdateProductHandler(products store.ProductStore, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Name == nil && req.Description == nil && req.Price == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no fields to update"})
		}

		product, err := products.Update(c.Request().Context(), c.Param("product_id"), store.ProductUpdate{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		cache.InvalidateApprovedProducts(c.Request().Context(), cch)
		return c.JSON(http.StatusOK, api.NewProductResponse(*product))
	}
}

// DeleteProductHandler removes any product. The media asset is cleaned up
// on the job pool; a failed cleanup is logged and never fails the request.
// @Summary     Delete a product
// @Tags        admin
// @Produce     json
// @Param       product_id path string true "product ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/products/{product_id} [delete]
func DeleteProductHandler(products store.ProductStore, media storage.Store, jobs worker.Pool, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		product, err := products.GetByID(ctx, c.Param("product_id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := products.Delete(ctx, product.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if key := product.AssetKey; key != "" {
			logger := c.Logger()
			jobs.Submit(func() {
				if err := media.Delete(context.Background(), key); err != nil {
					logger.Warnf("delete media asset %s: %v", key, err)
				}
			})
		}
		cache.InvalidateApprovedProducts(ctx, cch)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "deleted"})
	}
}
