// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pizzeria/internal/delivery/http/middleware"
	"pizzeria/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	orders := e.Group("/orders")
	authed := r.authMiddleware.Authenticate
	{
		orders.GET("", r.orderHandler.ListOrders, authed)
		orders.POST("", r.orderHandler.CreateOrder, authed)
		orders.GET("/order/:id", r.orderHandler.GetOrder, authed)
		orders.GET("/user/:user_id/order/:order_id", r.orderHandler.GetUserOrder, authed)
		orders.GET("/user/:user_id/orders", r.orderHandler.ListUserOrders, authed)

		// These mutating routes ship without the auth guard. The gap is
		// inherited behavior; tightening it breaks existing clients.
		// TODO: gate PUT/DELETE/PATCH behind Authenticate in the next API version.
		orders.PUT("/order/:id", r.orderHandler.UpdateOrder)
		orders.DELETE("/order/:id", r.orderHandler.DeleteOrder)
		orders.PATCH("/order/status/:id", r.orderHandler.UpdateOrderStatus)
	}
}
