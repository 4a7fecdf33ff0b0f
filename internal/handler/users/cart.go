package users

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// AddCartItemHandler puts an approved product into the cart.
// @Summary     Add a product to my cart
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       body body api.AddCartItemRequest true "cart line"
// @Success     201 {object} api.CartItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cart [post]
func AddCartItemHandler(orders store.OrderStore, products store.ProductStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		var req api.AddCartItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product, err := products.GetByID(c.Request().Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !product.IsApproved {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
		}

		item := &model.CartItem{
			UserID:    claims.UserID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := orders.AddCartItem(c.Request().Context(), item); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		})
	}
}

// ListCartHandler returns the cart contents.
// @Summary     List my cart
// @Tags        cart
// @Produce     json
// @Success     200 {array} api.CartItemResponse
// @Security    ApiKeyAuth
// @Router      /cart [get]
func ListCartHandler(orders store.OrderStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		items, err := orders.ListCart(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewCartItemResponses(items))
	}
}

// RemoveCartItemHandler deletes one cart line. The line must belong to
// the caller; anything else reads as not found.
// @Summary     Remove a cart line
// @Tags        cart
// @Produce     json
// @Param       item_id path string true "cart line ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cart/{item_id} [delete]
func RemoveCartItemHandler(orders store.OrderStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		if err := orders.RemoveCartItem(c.Request().Context(), c.Param("item_id"), claims.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "cart item not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "removed"})
	}
}
