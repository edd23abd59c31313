// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pharmastore/internal/delivery/http/middleware"
	"pharmastore/internal/delivery/http/router/handler"
	"pharmastore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MedicineHandler *handler.MedicineHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	medicineHandler *handler.MedicineHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		medicineHandler: params.MedicineHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes: browsing is public, management requires the admin role
	medicineGroup := e.Group("/medicines")
	{
		medicineGroup.GET("", r.medicineHandler.List)
		medicineGroup.GET("/categories/all", r.medicineHandler.Categories)
		medicineGroup.GET("/:id", r.medicineHandler.Get)
		medicineGroup.POST("", r.medicineHandler.Create, r.authMiddleware.Authenticate, requireAdmin)
		medicineGroup.PUT("/:id", r.medicineHandler.Update, r.authMiddleware.Authenticate, requireAdmin)
		medicineGroup.DELETE("/:id", r.medicineHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Order routes all require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/admin/all", r.orderHandler.ListAll, requireAdmin)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PUT("/:id", r.orderHandler.UpdateStatus, requireAdmin)
	}
}
