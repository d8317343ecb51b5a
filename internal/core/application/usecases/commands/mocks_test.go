package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAwaitingPaymentCreatedBefore(
	ctx context.Context,
	before time.Time,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInventoryOracle struct{ mock.Mock }

func (m *MockInventoryOracle) AvailableStock(ctx context.Context, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryOracle) Snapshot(ctx context.Context, productIDs []kernel.UUID) (order.StockSnapshot, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(order.StockSnapshot), args.Error(1)
}

type MockInventoryRepository struct {
	MockInventoryOracle
}

func (m *MockInventoryRepository) Apply(ctx context.Context, adjustment order.StockAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockInventoryRepository) Upsert(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockShippingQuoteService struct{ mock.Mock }

func (m *MockShippingQuoteService) Quote(ctx context.Context, origin, destination kernel.Address) (kernel.Money, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockShippingQuoteService) QuoteWithTariff(
	ctx context.Context,
	tariff services.Tariff,
	origin, destination kernel.Address,
) (kernel.Money, error) {
	args := m.Called(ctx, tariff, origin, destination)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct {
	MockOrderUoW
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustAddress(t *testing.T, city, state string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{
		Street:     "Rua das Flores",
		Number:     "120",
		District:   "Centro",
		PostalCode: "01001-000",
		City:       city,
		State:      state,
	})
	require.NoError(t, err)
	return a
}

func newCart(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), mustAddress(t, "São Paulo", "SP"), createdAt)
	require.NoError(t, err)
	return o
}

// newAwaitingPayment returns a finalized order holding quantity units of a
// single product from a single store.
func newAwaitingPayment(t *testing.T, productID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	o := newCart(t)
	storeID := kernel.NewUUID()
	_, err := o.AddItem(productID, storeID, quantity, mustMoney(t, "10.00"), quantity)
	require.NoError(t, err)
	require.NoError(t, o.SetShipment(storeID, mustMoney(t, "5.00")))
	require.NoError(t, o.Finalize(order.Pix))
	return o
}

func newPaid(t *testing.T, productID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	o := newAwaitingPayment(t, productID, quantity)
	_, err := o.ConfirmPayment(order.StockSnapshot{productID: quantity}, createdAt.Add(time.Hour))
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
