package users

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler turns the cart into an order. Product name and price
// are snapshotted onto the order lines so later edits do not rewrite
// history. Cart lines whose product has disappeared are dropped.
// @Summary     Place an order from my cart
// @Tags        orders
// @Produce     json
// @Success     201 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [post]
func CreateOrderHandler(orders store.OrderStore, products store.ProductStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		ctx := c.Request().Context()

		lines, err := orders.ListCart(ctx, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		var items []model.OrderItem
		var total float64
		for _, line := range lines {
			product, err := products.GetByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			items = append(items, model.OrderItem{
				ProductID: product.ID,
				VendorID:  product.VendorID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  line.Quantity,
			})
			total += product.Price * float64(line.Quantity)
		}
		if len(items) == 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "cart is empty"})
		}

		order := &model.Order{
			UserID: claims.UserID,
			Items:  items,
			Total:  total,
			Status: model.OrderPlaced,
		}
		if err := orders.CreateOrder(ctx, order); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := orders.ClearCart(ctx, claims.UserID); err != nil {
			c.Logger().Warnf("clear cart for %s: %v", claims.UserID, err)
		}
		return c.JSON(http.StatusCreated, api.NewOrderResponse(*order))
	}
}

// ListMyOrdersHandler returns the caller's order history.
// @Summary     List my orders
// @Tags        orders
// @Produce     json
// @Success     200 {array} api.OrderResponse
// @Security    ApiKeyAuth
// @Router      /orders [get]
func ListMyOrdersHandler(orders store.OrderStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authentication"})
		}
		list, err := orders.ListByUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewOrderResponses(list))
	}
}
