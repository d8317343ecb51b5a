package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewFinalizeOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewFinalizeOrderCommand(orderID, order.Boleto)
	require.NoError(t, err)
	assert.Equal(t, order.Boleto, cmd.PaymentMethod())

	_, err = commands.NewFinalizeOrderCommand(orderID, order.NoPaymentMethod)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	storeID := kernel.NewUUID()
	_, err := cart.AddItem(kernel.NewUUID(), storeID, 1, mustMoney(t, "10.00"), 1)
	require.NoError(t, err)
	require.NoError(t, cart.SetShipment(storeID, mustMoney(t, "4.00")))
	cmd, err := commands.NewFinalizeOrderCommand(cart.ID(), order.CreditCard)
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

	h := commands.NewFinalizeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AwaitingPayment, cart.Status())
	assert.Equal(t, order.CreditCard, cart.PaymentMethod())
	assert.Equal(t, "14.00", cart.GrandTotal().String())
	require.Len(t, cart.DomainEvents(), 1)
	uow.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_MissingShipment(t *testing.T) {
	ctx := t.Context()
	cart := newCart(t)
	storeID := kernel.NewUUID()
	_, err := cart.AddItem(kernel.NewUUID(), storeID, 1, mustMoney(t, "10.00"), 1)
	require.NoError(t, err)
	cmd, err := commands.NewFinalizeOrderCommand(cart.ID(), order.Pix)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, cart.ID()).Return(cart, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var missing *errs.MissingShipmentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{storeID.String()}, missing.StoreIDs)
	assert.Equal(t, order.Cart, cart.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
