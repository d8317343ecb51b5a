package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var createdAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should reject empty id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	tests := []struct {
		name     string
		customer kernel.UUID
		limit    int
		offset   int
		want     error
	}{
		{"empty customer", kernel.UUID{}, 10, 0, errs.ErrValueIsRequired},
		{"zero limit", kernel.NewUUID(), 0, 0, errs.ErrValueIsOutOfRange},
		{"limit too large", kernel.NewUUID(), queries.MaxCustomerOrdersPageSize + 1, 0, errs.ErrValueIsOutOfRange},
		{"negative offset", kernel.NewUUID(), 10, -1, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := queries.NewGetCustomerOrdersQuery(tt.customer, tt.limit, tt.offset)

			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("should keep paging", func(t *testing.T) {
		q, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), 20, 40)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 20, q.Limit())
		assert.Equal(t, 40, q.Offset())
	})
}

// QueriesTestSuite runs the read side against an in-memory SQLite database
// seeded through the order repository.
type QueriesTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *orderrepo.GormOrderRepository
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (suite *QueriesTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ShipmentDTO{},
	))
	suite.db = db
	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *QueriesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *QueriesTestSuite) TestGetOrder_ReturnsLinesShipmentsAndTotals() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	o, productA, productB := suite.newPaidOrder(customerID, createdAt)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(view.ID.IsEqual(o.ID()))
	suite.True(view.CustomerID.IsEqual(customerID))
	suite.Equal(order.Paid, view.Status)
	suite.Equal(order.Pix, view.PaymentMethod)
	suite.True(view.DeliveryAddress.IsEqual(o.DeliveryAddress()))
	suite.True(view.CreatedAt.Equal(createdAt))
	suite.Require().NotNil(view.PaidAt)
	suite.True(view.PaidAt.Equal(createdAt.Add(30 * time.Minute)))

	suite.Require().Len(view.Items, 2)
	suite.True(view.Items[0].ProductID.IsEqual(productA))
	suite.Equal("25.00", view.Items[0].Subtotal.String())
	suite.True(view.Items[1].ProductID.IsEqual(productB))
	suite.Equal("40.00", view.Items[1].Subtotal.String())
	suite.Len(view.Shipments, 2)

	suite.Equal("65.00", view.ItemsTotal.String())
	suite.Equal("23.00", view.ShippingTotal.String())
	suite.Equal("88.00", view.GrandTotal.String())
}

func (suite *QueriesTestSuite) TestGetOrder_EmptyCart() {
	ctx := context.Background()
	o := suite.newCart(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.Cart, view.Status)
	suite.Nil(view.PaidAt)
	suite.Empty(view.Items)
	suite.Empty(view.Shipments)
	suite.True(view.GrandTotal.IsZero())
}

func (suite *QueriesTestSuite) TestGetOrder_NotFound() {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Nil(view)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), id.String())
}

func (suite *QueriesTestSuite) TestGetOrder_UnconstructedQuery() {
	_, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *QueriesTestSuite) TestGetCustomerOrders_NewestFirstWithTotals() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	older, _, _ := suite.newPaidOrder(customerID, createdAt)
	newer := suite.newCart(customerID, createdAt.Add(time.Hour))
	stranger := suite.newCart(kernel.NewUUID(), createdAt.Add(2*time.Hour))
	for _, o := range []*order.Order{older, newer, stranger} {
		suite.Require().NoError(suite.repo.Add(ctx, o))
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, 10, 0)
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Orders, 2)

	suite.True(resp.Orders[0].ID.IsEqual(newer.ID()))
	suite.Equal(order.Cart, resp.Orders[0].Status)
	suite.Equal(0, resp.Orders[0].ItemCount)
	suite.True(resp.Orders[0].GrandTotal.IsZero())

	suite.True(resp.Orders[1].ID.IsEqual(older.ID()))
	suite.Equal(order.Paid, resp.Orders[1].Status)
	suite.Equal(3, resp.Orders[1].ItemCount)
	suite.Equal("88.00", resp.Orders[1].GrandTotal.String())
	suite.NotNil(resp.Orders[1].PaidAt)
}

func (suite *QueriesTestSuite) TestGetCustomerOrders_Paging() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	var ids []kernel.UUID
	for i := range 3 {
		o := suite.newCart(customerID, createdAt.Add(time.Duration(i)*time.Hour))
		suite.Require().NoError(suite.repo.Add(ctx, o))
		ids = append(ids, o.ID())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, 2, 1)
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Orders, 2)
	suite.True(resp.Orders[0].ID.IsEqual(ids[1]))
	suite.True(resp.Orders[1].ID.IsEqual(ids[0]))
}

func (suite *QueriesTestSuite) TestGetCustomerOrders_NoOrders() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), 10, 0)
	suite.Require().NoError(err)

	resp, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(resp.Orders)
	suite.Empty(resp.Orders)
}

func (suite *QueriesTestSuite) TestReadsShareOneTransaction() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	o, _, _ := suite.newPaidOrder(customerID, createdAt)
	suite.Require().NoError(suite.repo.Add(ctx, o))
	inTx := suite.recordTransactionalReads()

	orderQuery, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, orderQuery)
	suite.Require().NoError(err)

	suite.Equal([]bool{true, true, true}, *inTx)

	*inTx = nil
	listQuery, err := queries.NewGetCustomerOrdersQuery(customerID, 10, 0)
	suite.Require().NoError(err)
	_, err = queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(ctx, listQuery)
	suite.Require().NoError(err)

	suite.Equal([]bool{true, true, true}, *inTx)
}

// recordTransactionalReads notes, for every raw read, whether it ran on a
// transaction rather than on the pool.
func (suite *QueriesTestSuite) recordTransactionalReads() *[]bool {
	var inTx []bool
	err := suite.db.Callback().Row().Before("gorm:row").Register("test:record_tx", func(db *gorm.DB) {
		_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
		inTx = append(inTx, ok)
	})
	suite.Require().NoError(err)
	return &inTx
}

func (suite *QueriesTestSuite) money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *QueriesTestSuite) newCart(customerID kernel.UUID, at time.Time) *order.Order {
	address, err := kernel.NewAddress(kernel.AddressFields{
		Street:     "Rua Augusta",
		Number:     "900",
		District:   "Consolação",
		PostalCode: "01304-001",
		City:       "São Paulo",
		State:      "SP",
	})
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, address, at)
	suite.Require().NoError(err)
	return o
}

func (suite *QueriesTestSuite) newPaidOrder(customerID kernel.UUID, at time.Time) (*order.Order, kernel.UUID, kernel.UUID) {
	o := suite.newCart(customerID, at)
	productA, productB := kernel.NewUUID(), kernel.NewUUID()
	storeA, storeB := kernel.NewUUID(), kernel.NewUUID()

	_, err := o.AddItem(productA, storeA, 2, suite.money("12.50"), 10)
	suite.Require().NoError(err)
	_, err = o.AddItem(productB, storeB, 1, suite.money("40.00"), 10)
	suite.Require().NoError(err)
	suite.Require().NoError(o.SetShipment(storeA, suite.money("8.00")))
	suite.Require().NoError(o.SetShipment(storeB, suite.money("15.00")))
	suite.Require().NoError(o.Finalize(order.Pix))

	_, err = o.ConfirmPayment(order.StockSnapshot{productA: 2, productB: 1}, at.Add(30*time.Minute))
	suite.Require().NoError(err)
	return o, productA, productB
}
