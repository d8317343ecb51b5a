package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	productID, storeID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(cart.ID(), productID, storeID, 2, mustMoney(t, "15.00"))
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		inventory.On("AvailableStock", ctx, productID).Return(5, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once(),
		repo.On("Update", ctx, cart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddItemCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	item, ok := cart.ItemByProduct(productID)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity())
	assert.Equal(t, "30.00", cart.ItemsTotal().String())
	inventory.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_StockInsufficient(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(cart.ID(), productID, kernel.NewUUID(), 3, mustMoney(t, "15.00"))
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		inventory.On("AvailableStock", ctx, productID).Return(2, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddItemCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	var stockErr *errs.StockInsufficientError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Empty(t, cart.Items())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddItemCommandHandler_Handle_InventoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "1.00"))
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	inventory.On("AvailableStock", ctx, cmd.ProductID()).Return(0, errors.New("inventory down")).Once()
	factory := new(MockOrderUoWFactory)

	h := commands.NewAddItemCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "inventory down")
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "1.00"))
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		inventory.On("AvailableStock", ctx, cmd.ProductID()).Return(10, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, cmd.OrderID()).
			Return(nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddItemCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	placed := newAwaitingPayment(t, productID, 1)
	cmd, err := commands.NewAddItemCommand(placed.ID(), productID, kernel.NewUUID(), 1, mustMoney(t, "1.00"))
	require.NoError(t, err)

	inventory := new(MockInventoryOracle)
	inventory.On("AvailableStock", ctx, productID).Return(10, nil).Once()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, inventory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
	assert.Equal(t, order.AwaitingPayment, placed.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
