package repository

import (
	"context"
	"errors"

	"pizzeria/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order entity and assigns its ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// FindAll retrieves every order in the store.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByUser retrieves all orders owned by the given user.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Order, error)

	// FindUserOrder retrieves a single order filtered by ownership.
	// Returns ErrOrderNotFound when the order does not exist or is not
	// owned by the given user.
	FindUserOrder(ctx context.Context, userID, orderID uint) (*entity.Order, error)

	// Update modifies an existing order entity in the storage.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order from the storage.
	Delete(ctx context.Context, order *entity.Order) error
}
