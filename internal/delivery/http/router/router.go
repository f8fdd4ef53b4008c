// Package router contains routing setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered,
// injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	orderManagers := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleWorker)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/me", r.userHandler.Me, authenticate)
	}

	// Catalog browsing is public; catalog management is admin-only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.POST("", r.catalogHandler.CreateProduct, authenticate, adminOnly)

		productGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		productGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, authenticate)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.catalogHandler.ListCategories, authenticate)
		categoryGroup.POST("", r.catalogHandler.CreateCategory, authenticate, adminOnly)
	}

	countryGroup := e.Group("/countries")
	{
		countryGroup.GET("", r.catalogHandler.ListCountries, authenticate)
		countryGroup.POST("", r.catalogHandler.CreateCountry, authenticate, adminOnly)
	}

	manufacturerGroup := e.Group("/manufacturers")
	{
		manufacturerGroup.GET("", r.catalogHandler.ListManufacturers, authenticate)
		manufacturerGroup.POST("", r.catalogHandler.CreateManufacturer, authenticate, adminOnly)
	}

	attributeGroup := e.Group("/attributes")
	{
		attributeGroup.GET("", r.catalogHandler.ListAttributes, authenticate)
		attributeGroup.POST("", r.catalogHandler.CreateAttribute, authenticate, adminOnly)
	}

	paymentMethodGroup := e.Group("/payment-methods")
	{
		paymentMethodGroup.GET("", r.catalogHandler.ListPaymentMethods, authenticate)
		paymentMethodGroup.POST("", r.catalogHandler.CreatePaymentMethod, authenticate, adminOnly)
	}

	deliveryMethodGroup := e.Group("/delivery-methods")
	{
		deliveryMethodGroup.GET("", r.catalogHandler.ListDeliveryMethods, authenticate)
		deliveryMethodGroup.POST("", r.catalogHandler.CreateDeliveryMethod, authenticate, adminOnly)
	}

	// Order routes require authentication. Status transitions are
	// restricted to staff roles.
	orderGroup := e.Group("/orders")
	orderGroup.Use(authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus, orderManagers)
	}
}
