package sqldb

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	var orderID uint
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		order := &entity.Order{
			Size:     entity.SizeMedium,
			Flavour:  "vanilla",
			Quantity: 1,
			Status:   entity.StatusPending,
		}
		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return err
		}
		orderID = order.ID

		return nil
	})
	require.NoError(t, err)

	// Visible outside the transaction after commit.
	found, err := NewOrderRepository(db).FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "vanilla", found.Flavour)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		order := &entity.Order{
			Size:     entity.SizeMedium,
			Flavour:  "vanilla",
			Quantity: 1,
			Status:   entity.StatusPending,
		}
		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	orders, err := NewOrderRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
