// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CuisineHandler  *handler.CuisineHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	VendorHandler   *handler.VendorHandler
	PreviewHandler  *handler.PreviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cuisine  *handler.CuisineHandler
	customer *handler.CustomerHandler
	order    *handler.OrderHandler
	product  *handler.ProductHandler
	vendor   *handler.VendorHandler
	preview  *handler.PreviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cuisine:  params.CuisineHandler,
		customer: params.CustomerHandler,
		order:    params.OrderHandler,
		product:  params.ProductHandler,
		vendor:   params.VendorHandler,
		preview:  params.PreviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	cuisines := e.Group("/cuisines")
	{
		cuisines.POST("", r.cuisine.Create)
		cuisines.GET("", r.cuisine.List)
		cuisines.GET("/:id", r.cuisine.Get)
		cuisines.PUT("/:id", r.cuisine.Update)
		cuisines.DELETE("/:id", r.cuisine.Delete)
	}

	customers := e.Group("/customers")
	{
		customers.POST("", r.customer.Create)
		customers.GET("", r.customer.List)
		customers.GET("/:id", r.customer.Get)
		customers.PUT("/:id", r.customer.Update)
		customers.DELETE("/:id", r.customer.Delete)
	}

	orders := e.Group("/orders")
	{
		orders.POST("", r.order.Create)
		orders.GET("", r.order.List)
		orders.GET("/:id", r.order.Get)
		orders.PUT("/:id", r.order.Update)
		orders.DELETE("/:id", r.order.Delete)
	}

	products := e.Group("/products")
	{
		products.POST("", r.product.Create)
		products.GET("", r.product.List)
		products.GET("/search", r.product.Search)
		products.GET("/sku/:sku", r.product.GetBySKU)
		products.GET("/:id", r.product.Get)
		products.PUT("/:id", r.product.Update)
		products.DELETE("/:id", r.product.Delete)

		products.GET("/:id/media", r.product.ListMedia)
		products.POST("/:id/media", r.product.AddMedia)
		products.POST("/:id/media/upload", r.product.UploadMedia)
		products.DELETE("/:id/media/:mediaId", r.product.RemoveMedia)

		// Legacy alias for clients that still speak image-only routes.
		products.GET("/:id/images", r.product.ListMedia)
		products.POST("/:id/images", r.product.AddMedia)
		products.DELETE("/:id/images/:mediaId", r.product.RemoveMedia)
	}

	vendors := e.Group("/vendors")
	{
		vendors.POST("", r.vendor.Create)
		vendors.GET("", r.vendor.List)
		vendors.GET("/:id", r.vendor.Get)
		vendors.PUT("/:id", r.vendor.Update)
		vendors.DELETE("/:id", r.vendor.Delete)
	}

	previews := e.Group("/preview")
	{
		previews.POST("/fetch", r.preview.Fetch)
	}
}
