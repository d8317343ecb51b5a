package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/events"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/inventoryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/redis/stockcache"
	"marketplace/internal/adapters/out/shipping"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. Redis and the broker are
// optional: without Redis the oracle reads the database directly, and without
// a publisher events are dropped after commit.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	inventory  ports.InventoryOracle
	stockCache *stockcache.Cache
	quotes     ports.ShippingQuoteService
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:    config,
		gormDB:    gormDB,
		logger:    logger,
		inventory: inventoryrepo.NewGormInventoryRepository(gormDB),
	}

	var fanOut events.FanOut
	if publisher != nil {
		fanOut = append(fanOut, publisher)
	}

	if redisClient != nil {
		cache, err := stockcache.NewCache(redisClient, c.inventory, config.StockCacheTTL, logger)
		if err != nil {
			return nil, err
		}
		c.stockCache = cache
		c.inventory = cache
		fanOut = append(fanOut, stockcache.NewInvalidator(cache))
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, fanOut, logger)

	quotes, err := newQuoteService(config)
	if err != nil {
		return nil, err
	}
	c.quotes = quotes

	return c, nil
}

func newQuoteService(config Config) (ports.ShippingQuoteService, error) {
	calculator, err := services.NewShippingCalculator()
	if err != nil {
		return nil, err
	}
	kind, err := services.ParseTariffKind(config.ShippingTariffKind)
	if err != nil {
		return nil, err
	}
	tariff, err := services.NewTariff(kind, config.ShippingTariffRate)
	if err != nil {
		return nil, err
	}
	estimator, err := shipping.NewRegionDistanceEstimator(shipping.DefaultRegionDistances())
	if err != nil {
		return nil, err
	}
	return shipping.NewTariffQuoteService(calculator, tariff, estimator)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory(), c.inventory)
}

func (c *CompositionRoot) CreateUpdateItemQuantityCommandHandler() commands.UpdateItemQuantityCommandHandler {
	return commands.NewUpdateItemQuantityCommandHandler(c.orderUoWFactory(), c.inventory)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachShipmentCommandHandler() commands.AttachShipmentCommandHandler {
	return commands.NewAttachShipmentCommandHandler(c.orderUoWFactory(), c.quotes)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateAdvanceFulfillmentCommandHandler() commands.AdvanceFulfillmentCommandHandler {
	return commands.NewAdvanceFulfillmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireUnpaidOrdersCommandHandler() commands.ExpireUnpaidOrdersCommandHandler {
	return commands.NewExpireUnpaidOrdersCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateSetProductStockCommandHandler() commands.SetProductStockCommandHandler {
	return commands.NewSetProductStockCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	addItem := c.CreateAddItemCommandHandler()
	updateItemQuantity := c.CreateUpdateItemQuantityCommandHandler()
	removeItem := c.CreateRemoveItemCommandHandler()
	attachShipment := c.CreateAttachShipmentCommandHandler()
	finalizeOrder := c.CreateFinalizeOrderCommandHandler()
	confirmPayment := c.CreateConfirmPaymentCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	advance := c.CreateAdvanceFulfillmentCommandHandler()
	setStock := c.CreateSetProductStockCommandHandler()

	opts := []httpin.Option{httpin.WithLogger(c.logger)}
	if c.stockCache != nil {
		opts = append(opts, httpin.WithStockInvalidator(c.stockCache))
	}

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        &createOrder,
		AddItem:            &addItem,
		UpdateItemQuantity: &updateItemQuantity,
		RemoveItem:         &removeItem,
		AttachShipment:     &attachShipment,
		FinalizeOrder:      &finalizeOrder,
		ConfirmPayment:     &confirmPayment,
		CancelOrder:        &cancelOrder,
		AdvanceFulfillment: &advance,
		SetProductStock:    &setStock,
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:  c.CreateGetCustomerOrdersQueryHandler(),
		Inventory:          c.inventory,
	}, opts...)
}

// CreateJobManager builds the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	expire := c.CreateExpireUnpaidOrdersCommandHandler()
	expiry, err := jobs.NewUnpaidOrderExpiryJob(&expire, jobs.UnpaidOrderExpiryConfig{
		Schedule:      c.config.ExpirySchedule,
		PaymentWindow: c.config.PaymentWindow,
		BatchSize:     c.config.ExpiryBatchSize,
	}, c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(expiry), nil
}

// Migrate creates or updates the tables behind the order and stock stores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.ShipmentDTO{},
		&inventoryrepo.ProductStockDTO{},
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
