package router

import (
	"context"

	"github.com/labstack/echo/v4"

	"storefront/internal/cache"
	"storefront/internal/handler"
	"storefront/internal/handler/admin"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/products"
	"storefront/internal/handler/users"
	"storefront/internal/handler/vendor"
	"storefront/internal/mailer"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"
)

// Deps carries everything the handlers need. Health pings whichever
// datastore backend the service was started with.
type Deps struct {
	Users    store.UserStore
	Products store.ProductStore
	Orders   store.OrderStore
	Cache    cache.Cache
	Media    storage.Store
	Mail     mailer.Mailer
	Jobs     worker.Pool
	Health   func(ctx context.Context) error
}

// Setup registers all routes and their role gates.
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(d.Health), middleware.RequireAuth)

	api.POST("/auth/register", auth.RegisterHandler(d.Users))
	api.POST("/auth/login", auth.LoginHandler(d.Users))

	api.GET("/products/approved", products.ListApprovedHandler(d.Products, d.Cache))
	api.GET("/products/:product_id", products.GetProductHandler(d.Products))

	apiUser := api.Group("/user", middleware.RequireRole(model.RoleUser))
	apiUser.GET("/profile", users.GetProfileHandler(d.Users))
	apiUser.PUT("/profile", users.UpdateProfileHandler(d.Users))
	apiUser.POST("/cart", users.AddCartItemHandler(d.Orders, d.Products))
	apiUser.GET("/cart", users.ListCartHandler(d.Orders))
	apiUser.DELETE("/cart/:item_id", users.RemoveCartItemHandler(d.Orders))
	apiUser.POST("/orders", users.CreateOrderHandler(d.Orders, d.Products))
	apiUser.GET("/orders", users.ListMyOrdersHandler(d.Orders))

	// Password rotation is open to every role.
	api.PUT("/user/password", users.UpdatePasswordHandler(d.Users), middleware.RequireAuth)

	apiVendor := api.Group("/vendor", middleware.RequireRole(model.RoleVendor))
	apiVendor.POST("/products", vendor.CreateProductHandler(d.Products, d.Media, d.Mail, d.Jobs))
	apiVendor.GET("/products", vendor.ListMyProductsHandler(d.Products))
	apiVendor.PUT("/products/:product_id", vendor.UpdateProductHandler(d.Products))
	apiVendor.DELETE("/products/:product_id", vendor.DeleteProductHandler(d.Products, d.Cache))
	apiVendor.GET("/orders", vendor.ListOrdersHandler(d.Orders))
	apiVendor.PUT("/orders/:order_id/status", vendor.UpdateOrderStatusHandler(d.Orders))

	apiAdmin := api.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	apiAdmin.GET("/vendors", admin.ListVendorsHandler(d.Users))
	apiAdmin.PUT("/vendors/approve/:vendor_id", admin.ApproveVendorHandler(d.Users))
	apiAdmin.DELETE("/vendors/:vendor_id", admin.DeleteVendorHandler(d.Users, d.Products, d.Cache))
	apiAdmin.GET("/products/pending", admin.ListPendingProductsHandler(d.Products))
	apiAdmin.PUT("/products/approve/:product_id", admin.ApproveProductHandler(d.Products, d.Cache))
	apiAdmin.PUT("/products/:product_id", admin.UpdateProductHandler(d.Products, d.Cache))
	apiAdmin.DELETE("/products/:product_id", admin.DeleteProductHandler(d.Products, d.Media, d.Jobs, d.Cache))
	apiAdmin.GET("/users", admin.ListUsersHandler(d.Users))
	apiAdmin.DELETE("/users/:user_id", admin.DeleteUserHandler(d.Users))
}
