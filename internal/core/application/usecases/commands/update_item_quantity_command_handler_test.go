package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	productID := kernel.NewUUID()
	item, err := cart.AddItem(productID, kernel.NewUUID(), 1, mustMoney(t, "10.00"), 1)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateItemQuantityCommand(cart.ID(), item.ID(), 4)
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once(),
		inventory.On("AvailableStock", ctx, productID).Return(4, nil).Once(),
		repo.On("Update", ctx, cart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateItemQuantityCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	updated, ok := cart.Item(item.ID())
	require.True(t, ok)
	assert.Equal(t, 4, updated.Quantity())
	inventory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemQuantityCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	cmd, err := commands.NewUpdateItemQuantityCommand(cart.ID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	inventory.AssertNotCalled(t, "AvailableStock", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateItemQuantityCommandHandler_Handle_StockInsufficient(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	productID := kernel.NewUUID()
	item, err := cart.AddItem(productID, kernel.NewUUID(), 1, mustMoney(t, "10.00"), 1)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateItemQuantityCommand(cart.ID(), item.ID(), 6)
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	inventory.On("AvailableStock", ctx, productID).Return(5, nil).Once()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStockInsufficient)
	unchanged, _ := cart.Item(item.ID())
	assert.Equal(t, 1, unchanged.Quantity())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove line", func(t *testing.T) {
		ctx := t.Context()
		cart := newCart(t)
		item, err := cart.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "10.00"), 1)
		require.NoError(t, err)
		cmd, err := commands.NewRemoveItemCommand(cart.ID(), item.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once(),
			repo.On("Update", ctx, cart).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRemoveItemCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Empty(t, cart.Items())
		uow.AssertExpectations(t)
	})

	t.Run("should fail for unknown line", func(t *testing.T) {
		ctx := t.Context()
		cart := newCart(t)
		cmd, err := commands.NewRemoveItemCommand(cart.ID(), kernel.NewUUID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once()
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveItemCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
