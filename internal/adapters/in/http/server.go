// Package http exposes the order commands and queries as a JSON REST API on
// top of echo. Routes, parameter binding and payload types come from the
// server generated out of api/openapi.yml.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const openAPIPath = "/api/openapi.json"

// CommandHandler is satisfied by every command handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every query handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// StockInvalidator evicts cached stock after an administrative change.
type StockInvalidator interface {
	Invalidate(ctx context.Context, productIDs ...kernel.UUID) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder        CommandHandler[commands.CreateOrderCommand]
	AddItem            CommandHandler[commands.AddItemCommand]
	UpdateItemQuantity CommandHandler[commands.UpdateItemQuantityCommand]
	RemoveItem         CommandHandler[commands.RemoveItemCommand]
	AttachShipment     CommandHandler[commands.AttachShipmentCommand]
	FinalizeOrder      CommandHandler[commands.FinalizeOrderCommand]
	ConfirmPayment     CommandHandler[commands.ConfirmPaymentCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	AdvanceFulfillment CommandHandler[commands.AdvanceFulfillmentCommand]
	SetProductStock    CommandHandler[commands.SetProductStockCommand]

	GetOrder          QueryHandler[queries.GetOrderQuery, *queries.GetOrderQueryResponse]
	GetCustomerOrders QueryHandler[queries.GetCustomerOrdersQuery, *queries.GetCustomerOrdersQueryResponse]

	Inventory ports.InventoryOracle
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface. It translates HTTP
// requests into commands and queries and maps domain errors to status codes.
type Server struct {
	handlers    Handlers
	invalidator StockInvalidator
	now         func() time.Time
	logger      *slog.Logger
}

type Option func(*Server)

// WithClock overrides the clock used for creation and payment timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithStockInvalidator makes PUT /stock evict the product's cached figure.
func WithStockInvalidator(invalidator StockInvalidator) Option {
	return func(s *Server) { s.invalidator = invalidator }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

func NewServer(handlers Handlers, opts ...Option) *Server {
	s := &Server{
		handlers: handlers,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "http_server")
	return s
}

// Register mounts the health check, the API description and the generated
// routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(openAPIPath, s.GetOpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(openAPIPath)))

	servers.RegisterHandlers(e, s)
}

var loadOpenAPI = sync.OnceValues(servers.GetSwagger)

// GetOpenAPI handles GET /api/openapi.json with the document the routes
// were generated from.
func (s *Server) GetOpenAPI(c echo.Context) error {
	doc, err := loadOpenAPI()
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}
