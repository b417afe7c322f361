// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListOrders retrieves every order in the store.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// CreateOrder places a new order. Every new order starts PENDING.
// Attribution is best-effort: when the caller's username has no matching
// user row the order is stored unattributed instead of failing.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.logger.Debug("Creating order", "flavour", input.Flavour, "username", input.Username)

	order := &entity.Order{
		Size:     input.Size,
		Flavour:  input.Flavour,
		Quantity: input.Quantity,
		Status:   entity.StatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.Username != "" {
			user, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
			switch {
			case err == nil:
				order.UserID = &user.ID
			case errors.Is(err, repository.ErrUserNotFound):
				srv.logger.Debug("Order placed without attribution", "username", input.Username)
			default:
				return errors.Wrap(err, "failed to resolve caller identity")
			}
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves a single order by ID.
func (srv *orderService) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder replaces size, flavour and quantity of an existing order.
func (srv *orderService) UpdateOrder(ctx context.Context, orderID uint, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	srv.logger.Debug("Updating order", "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		found.Size = input.Size
		found.Flavour = input.Flavour
		found.Quantity = input.Quantity

		if err := repoFactory.OrderRepo().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// DeleteOrder removes an order and returns its prior state.
// A second delete of the same ID reports not-found, never a crash.
func (srv *orderService) DeleteOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	srv.logger.Debug("Deleting order", "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		if err := repoFactory.OrderRepo().Delete(ctx, found); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetUserOrder retrieves an order only if it is owned by the given user.
func (srv *orderService) GetUserOrder(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("unknown user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.OrderRepo().FindUserOrder(ctx, userID, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("order not owned by user")
			}

			return errors.Wrap(err, "failed to find user order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListUserOrders retrieves all orders owned by the given user.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("unknown user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.OrderRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list user orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus sets the workflow status of an order.
// Any valid status may replace any other; transitions are not restricted.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	srv.logger.Debug("Updating order status", "orderID", orderID, "status", status)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		found.Status = status

		if err := repoFactory.OrderRepo().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// findOrder loads an order by ID, translating the repository sentinel into
// the domain not-found error surfaced to the API boundary.
func (srv *orderService) findOrder(ctx context.Context, repoFactory repository.RepositoryFactory, orderID uint) (*entity.Order, error) {
	found, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("unknown order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return found, nil
}
