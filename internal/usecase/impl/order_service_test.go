package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	mockRepo "pizzeria/internal/mocks/repository"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := newDiscardLogger()

	service := NewOrderService(txManager, logger)

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	stored := []*entity.Order{
		{ID: 1, Size: entity.SizeMedium, Flavour: "margherita", Quantity: 1, Status: entity.StatusPending},
		{ID: 2, Size: entity.SizeLarge, Flavour: "pepperoni", Quantity: 2, Status: entity.StatusDelivered},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindAll(ctx).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	orders, err := fx.service.ListOrders(ctx)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, stored, orders)
}

func TestOrderService_CreateOrder_AttributedAndPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Size:     entity.SizeLarge,
		Flavour:  "quattro formaggi",
		Quantity: 2,
		Username: "alice",
	}

	alice := &entity.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	require.NotNil(t, order.UserID)
	assert.Equal(t, alice.ID, *order.UserID)
}

func TestOrderService_CreateOrder_UnknownCallerLeftUnattributed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Size:     entity.SizeSmall,
		Flavour:  "funghi",
		Quantity: 1,
		Username: "ghost",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, order.UserID)
	assert.Equal(t, entity.StatusPending, order.Status)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderNotFound.WrapMessage("unknown order"))

	order, err := fx.service.GetOrder(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrder_RepositoryError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, uint(1)).Return(nil, errors.New("database error"))

			_ = fn(mockFactory)
		}).
		Return(errors.New("failed to find order: database error"))

	order, err := fx.service.GetOrder(ctx, 1)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "failed to find order")
}

func TestOrderService_UpdateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.UpdateOrderInput{
		Size:     entity.SizeExtraLarge,
		Flavour:  "diavola",
		Quantity: 3,
	}

	existing := &entity.Order{
		ID:       5,
		Size:     entity.SizeSmall,
		Flavour:  "margherita",
		Quantity: 1,
		Status:   entity.StatusInTransit,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, uint(5)).Return(existing, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.SizeExtraLarge, order.Size)
					assert.Equal(t, "diavola", order.Flavour)
					assert.Equal(t, 3, order.Quantity)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.UpdateOrder(ctx, 5, input)

	require.NoError(t, err)
	assert.Equal(t, entity.SizeExtraLarge, order.Size)
	// Replacing the descriptive fields must not touch the workflow status.
	assert.Equal(t, entity.StatusInTransit, order.Status)
}

func TestOrderService_DeleteOrder_ReturnsPriorState(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:       8,
		Size:     entity.SizeMedium,
		Flavour:  "capricciosa",
		Quantity: 1,
		Status:   entity.StatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, uint(8)).Return(existing, nil)
			mockOrderRepo.EXPECT().Delete(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.DeleteOrder(ctx, 8)

	require.NoError(t, err)
	assert.Equal(t, existing, order)
}

func TestOrderService_DeleteOrder_AlreadyGone(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, uint(8)).Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderNotFound.WrapMessage("unknown order"))

	order, err := fx.service.DeleteOrder(ctx, 8)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetUserOrder_UnknownUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, uint(3)).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound.WrapMessage("unknown user"))

	order, err := fx.service.GetUserOrder(ctx, 3, 1)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestOrderService_GetUserOrder_NotOwned(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 3, Username: "alice"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, uint(3)).Return(owner, nil)
			mockOrderRepo.EXPECT().FindUserOrder(ctx, uint(3), uint(1)).Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderNotFound.WrapMessage("order not owned by user"))

	order, err := fx.service.GetUserOrder(ctx, 3, 1)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListUserOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 4, Username: "bob"}
	ownerID := owner.ID
	stored := []*entity.Order{
		{ID: 10, Size: entity.SizeMedium, Flavour: "hawaiian", Quantity: 1, Status: entity.StatusPending, UserID: &ownerID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, uint(4)).Return(owner, nil)
			mockOrderRepo.EXPECT().FindByUser(ctx, uint(4)).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	orders, err := fx.service.ListUserOrders(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, stored, orders)
}

func TestOrderService_UpdateOrderStatus_AnyTransitionAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:       6,
		Size:     entity.SizeMedium,
		Flavour:  "margherita",
		Quantity: 1,
		Status:   entity.StatusDelivered,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, uint(6)).Return(existing, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.StatusPending, order.Status)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// Moving a delivered order back to pending is permitted; the workflow
	// does not restrict transitions.
	order, err := fx.service.UpdateOrderStatus(ctx, 6, entity.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, uint(77)).Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderNotFound.WrapMessage("unknown order"))

	order, err := fx.service.UpdateOrderStatus(ctx, 77, entity.StatusInTransit)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
