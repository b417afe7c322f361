// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order.
// Username carries the caller identity resolved from the access token;
// attribution is best-effort and the order stays unattributed when no
// matching user exists.
type CreateOrderInput struct {
	Size     entity.OrderSize
	Flavour  string
	Quantity int
	Username string
}

// UpdateOrderInput defines the data for a full-field order update.
type UpdateOrderInput struct {
	Size     entity.OrderSize
	Flavour  string
	Quantity int
}

// OrderUsecase defines the interface for order-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OrderUsecase interface {
	// ListOrders retrieves every order in the store.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CreateOrder places a new order. The returned order always starts PENDING.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order by ID.
	GetOrder(ctx context.Context, orderID uint) (*entity.Order, error)

	// UpdateOrder replaces size, flavour and quantity of an existing order.
	UpdateOrder(ctx context.Context, orderID uint, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order and returns its prior state.
	DeleteOrder(ctx context.Context, orderID uint) (*entity.Order, error)

	// GetUserOrder retrieves an order only if it is owned by the given user.
	GetUserOrder(ctx context.Context, userID, orderID uint) (*entity.Order, error)

	// ListUserOrders retrieves all orders owned by the given user.
	ListUserOrders(ctx context.Context, userID uint) ([]*entity.Order, error)

	// UpdateOrderStatus sets the workflow status of an order. Any valid
	// status may replace any other; no transition graph is enforced.
	UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error)
}
