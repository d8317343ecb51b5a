package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultPageSize = 20

// CreateOrder handles POST /api/v1/orders - opens an empty cart.
func (s *Server) CreateOrder(c echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, idErr := domainID("customer id", req.CustomerId)
	address, addrErr := addressToDomain(req.DeliveryAddress)
	if err := errors.Join(idErr, addrErr); err != nil {
		return s.writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, s.now())
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, servers.CreatedOrder{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderID openapi_types.UUID) error {
	id, err := domainID("order id", orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(
	c echo.Context,
	customerID openapi_types.UUID,
	params servers.GetCustomerOrdersParams,
) error {
	id, err := domainID("customer id", customerID)
	if err != nil {
		return s.writeError(c, err)
	}

	limit, offset := defaultPageSize, 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewGetCustomerOrdersQuery(id, limit, offset)
	if err != nil {
		return s.writeError(c, err)
	}

	resp, err := s.handlers.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, summariesFromView(resp))
}

// AddItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItem(c echo.Context, orderID openapi_types.UUID) error {
	var req servers.AddItemJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, orderErr := domainID("order id", orderID)
	productID, productErr := domainID("product id", req.ProductId)
	storeID, storeErr := domainID("store id", req.StoreId)
	unitPrice, priceErr := kernel.MoneyFromString(req.UnitPrice)
	if err := errors.Join(orderErr, productErr, storeErr, priceErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddItemCommand(id, productID, storeID, req.Quantity, unitPrice)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.AddItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateItemQuantity handles PATCH /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) UpdateItemQuantity(c echo.Context, orderID, itemID openapi_types.UUID) error {
	var req servers.UpdateItemQuantityJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, orderErr := domainID("order id", orderID)
	item, itemErr := domainID("item id", itemID)
	if err := errors.Join(orderErr, itemErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(id, item, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.UpdateItemQuantity.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveItem(c echo.Context, orderID, itemID openapi_types.UUID) error {
	id, orderErr := domainID("order id", orderID)
	item, itemErr := domainID("item id", itemID)
	if err := errors.Join(orderErr, itemErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRemoveItemCommand(id, item)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.RemoveItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AttachShipment handles PUT /api/v1/orders/{orderId}/shipments/{storeId}.
// The shipping value is quoted server-side from the store's origin address,
// with the store's own tariff when the body carries one.
func (s *Server) AttachShipment(c echo.Context, orderID, storeID openapi_types.UUID) error {
	var req servers.AttachShipmentJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, orderErr := domainID("order id", orderID)
	store, storeErr := domainID("store id", storeID)
	origin, originErr := addressToDomain(req.Origin)
	if err := errors.Join(orderErr, storeErr, originErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := s.attachShipmentCommand(id, store, origin, req.Tariff)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.AttachShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) attachShipmentCommand(
	orderID, storeID kernel.UUID,
	origin kernel.Address,
	tariff *servers.StoreTariff,
) (commands.AttachShipmentCommand, error) {
	if tariff == nil {
		return commands.NewAttachShipmentCommand(orderID, storeID, origin)
	}
	storeTariff, err := tariffToDomain(*tariff)
	if err != nil {
		return commands.AttachShipmentCommand{}, err
	}
	return commands.NewAttachShipmentCommandWithTariff(orderID, storeID, origin, storeTariff)
}

// FinalizeOrder handles POST /api/v1/orders/{orderId}/finalize.
func (s *Server) FinalizeOrder(c echo.Context, orderID openapi_types.UUID) error {
	var req servers.FinalizeOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, idErr := domainID("order id", orderID)
	method, methodErr := order.ParsePaymentMethod(req.PaymentMethod)
	if err := errors.Join(idErr, methodErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewFinalizeOrderCommand(id, method)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.FinalizeOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment. It is called
// by the payment gateway callback once the charge has settled.
func (s *Server) ConfirmPayment(c echo.Context, orderID openapi_types.UUID) error {
	id, err := domainID("order id", orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(id, s.now())
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ConfirmPayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context, orderID openapi_types.UUID) error {
	id, err := domainID("order id", orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdvanceFulfillment handles POST /api/v1/orders/{orderId}/fulfillment with
// the next status: Preparing, Shipped or Delivered.
func (s *Server) AdvanceFulfillment(c echo.Context, orderID openapi_types.UUID) error {
	var req servers.AdvanceFulfillmentJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, idErr := domainID("order id", orderID)
	target, statusErr := order.ParseStatus(req.Status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAdvanceFulfillmentCommand(id, target)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.AdvanceFulfillment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
