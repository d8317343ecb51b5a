package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/inventoryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// uowFactory adapts the GORM factory to the command layer's interface.
type uowFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

// UnitOfWorkIntegrationTestSuite exercises row locking against a real
// PostgreSQL database, which SQLite cannot emulate.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ShipmentDTO{},
		&inventoryrepo.ProductStockDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items, order_shipments, product_stocks").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockEventPublisher)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.New(slog.DiscardHandler))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestConfirmPayment_LastUnitGoesToExactlyOneOrder races two payments for
// the last unit of a product. The locked snapshot serializes them, so one is
// paid and the other is refused without touching stock.
func (suite *UnitOfWorkIntegrationTestSuite) TestConfirmPayment_LastUnitGoesToExactlyOneOrder() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	first := newAwaitingPayment(suite.T(), productID, 1)
	second := newAwaitingPayment(suite.T(), productID, 1)
	suite.seed(productID, 1, first, second)

	handler := commands.NewConfirmPaymentCommandHandler(uowFactory{suite.factory})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, o := range []*order.Order{first, second} {
		wg.Add(1)
		go func(i int, orderID kernel.UUID) {
			defer wg.Done()
			cmd, err := commands.NewConfirmPaymentCommand(orderID, createdAt.Add(time.Hour))
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(ctx, cmd)
		}(i, o.ID())
	}
	wg.Wait()

	succeeded, refused := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrStockInsufficient):
			refused++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, refused)

	available, err := suite.factory.Create().InventoryRepository().AvailableStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Zero(available)

	statuses := make(map[order.Status]int)
	for _, o := range []*order.Order{first, second} {
		stored, getErr := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(getErr)
		statuses[stored.Status()]++
	}
	suite.Equal(map[order.Status]int{order.Paid: 1, order.AwaitingPayment: 1}, statuses)
}

// TestCancel_RestoresStockConsumedByPayment runs the full paid-then-cancelled
// flow and checks inventory returns to its starting level.
func (suite *UnitOfWorkIntegrationTestSuite) TestCancel_RestoresStockConsumedByPayment() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	placed := newAwaitingPayment(suite.T(), productID, 3)
	suite.seed(productID, 5, placed)

	factory := uowFactory{suite.factory}
	confirm := commands.NewConfirmPaymentCommandHandler(factory)
	confirmCmd, err := commands.NewConfirmPaymentCommand(placed.ID(), createdAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(confirm.Handle(ctx, confirmCmd))
	suite.Equal(2, suite.available(productID))

	cancel := commands.NewCancelOrderCommandHandler(factory)
	cancelCmd, err := commands.NewCancelOrderCommand(placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(cancel.Handle(ctx, cancelCmd))
	suite.Equal(5, suite.available(productID))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, stored.Status())
	suite.Require().NotNil(stored.PaidAt())
}

// TestGetAwaitingPayment_SkipsLockedOrders checks that a sweep does not wait
// for an order another transaction is working on.
func (suite *UnitOfWorkIntegrationTestSuite) TestGetAwaitingPayment_SkipsLockedOrders() {
	ctx := context.Background()
	locked := newAwaitingPayment(suite.T(), kernel.NewUUID(), 1)
	free := newAwaitingPayment(suite.T(), kernel.NewUUID(), 1)
	suite.seed(kernel.NewUUID(), 0, locked, free)

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	_, err := holder.OrderRepository().Get(ctx, locked.ID())
	suite.Require().NoError(err)

	sweeper := suite.factory.Create()
	suite.Require().NoError(sweeper.Begin(ctx))
	defer func() { _ = sweeper.Rollback(ctx) }()
	orders, err := sweeper.OrderRepository().GetAwaitingPaymentCreatedBefore(ctx, createdAt.Add(time.Hour), 10)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(free.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(productID kernel.UUID, quantity int, orders ...*order.Order) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.InventoryRepository().Upsert(ctx, productID, quantity))
	for _, o := range orders {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) available(productID kernel.UUID) int {
	available, err := suite.factory.Create().InventoryRepository().AvailableStock(context.Background(), productID)
	suite.Require().NoError(err)
	return available
}
