// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pizzeria/internal/delivery/http/middleware"
	"pizzeria/internal/delivery/http/response"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Size     string `json:"size" validate:"required,oneof=SMALL MEDIUM LARGE EXTRA_LARGE"`
	Flavour  string `json:"flavour" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateOrderRequest represents the request body for a full order update
type UpdateOrderRequest struct {
	Size     string `json:"size" validate:"required,oneof=SMALL MEDIUM LARGE EXTRA_LARGE"`
	Flavour  string `json:"flavour" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"order_status" validate:"required,oneof=PENDING IN_TRANSIT DELIVERED"`
}

// ListOrders handles retrieving every order
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CreateOrder handles placing a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", err.Error())
	}

	username, _ := c.Get(middleware.KeyUsername).(string)

	input := &usecase.CreateOrderInput{
		Size:     entity.OrderSize(req.Size),
		Flavour:  req.Flavour,
		Quantity: req.Quantity,
		Username: username,
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder handles retrieving a single order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateOrder handles a full replace of an order's descriptive fields
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.UpdateOrderInput{
		Size:     entity.OrderSize(req.Size),
		Flavour:  req.Flavour,
		Quantity: req.Quantity,
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), orderID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder handles removing an order. The response carries the
// order as it was before deletion.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.DeleteOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order deleted successfully")
}

// GetUserOrder handles retrieving one order scoped to its owner
func (h *OrderHandler) GetUserOrder(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	orderID, err := parseIDParam(c, "order_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetUserOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListUserOrders handles retrieving all orders owned by a user
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateOrderStatus handles moving an order through the delivery workflow
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
