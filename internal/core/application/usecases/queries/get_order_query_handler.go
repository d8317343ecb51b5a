package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// snapshotRead makes the statements of one query see a single committed
// state, so totals always match some real version of the order.
var snapshotRead = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// GetOrderQueryHandler reads one order with three SELECTs in one read-only
// transaction.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order view, or ObjectNotFoundError when no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var view *GetOrderQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if view, err = h.readOrder(tx, query.OrderID()); err != nil {
			return err
		}
		if view.Items, err = h.readItems(tx, query.OrderID()); err != nil {
			return err
		}
		view.Shipments, err = h.readShipments(tx, query.OrderID())
		return err
	}, snapshotRead)
	if err != nil {
		return nil, err
	}

	view.ItemsTotal = kernel.ZeroMoney()
	for _, item := range view.Items {
		view.ItemsTotal = view.ItemsTotal.Add(item.Subtotal)
	}
	view.ShippingTotal = kernel.ZeroMoney()
	for _, shipment := range view.Shipments {
		view.ShippingTotal = view.ShippingTotal.Add(shipment.Value)
	}
	view.GrandTotal = view.ItemsTotal.Add(view.ShippingTotal)

	return view, nil
}

func (h GetOrderQueryHandler) readOrder(db *gorm.DB, orderID kernel.UUID) (*GetOrderQueryResponse, error) {
	row := db.Raw(`
		SELECT
			customer_id,
			status,
			payment_method,
			delivery_street,
			delivery_number,
			delivery_complement,
			delivery_district,
			delivery_postal_code,
			delivery_city,
			delivery_state,
			created_at,
			paid_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		customerID     uuid.UUID
		status, method int
		address        kernel.AddressFields
		createdAt      time.Time
		paidAt         *time.Time
	)
	err := row.Scan(
		&customerID,
		&status,
		&method,
		&address.Street,
		&address.Number,
		&address.Complement,
		&address.District,
		&address.PostalCode,
		&address.City,
		&address.State,
		&createdAt,
		&paidAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	deliveryAddress, err := kernel.NewAddress(address)
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		ID:              orderID,
		CustomerID:      customer,
		Status:          order.Status(status),
		PaymentMethod:   order.PaymentMethod(method),
		DeliveryAddress: deliveryAddress,
		CreatedAt:       createdAt.UTC(),
		PaidAt:          utcOrNil(paidAt),
	}, nil
}

func (h GetOrderQueryHandler) readItems(db *gorm.DB, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			store_id,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			id, productID, storeID uuid.UUID
			quantity               int
			unitPrice              decimal.Decimal
		)
		if err = rows.Scan(&id, &productID, &storeID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		var item OrderItemView
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		item.Quantity = quantity
		item.Subtotal = item.UnitPrice.Mul(quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) readShipments(db *gorm.DB, orderID kernel.UUID) ([]OrderShipmentView, error) {
	rows, err := db.Raw(`
		SELECT
			store_id,
			value
		FROM order_shipments
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]OrderShipmentView, 0)
	for rows.Next() {
		var (
			storeID uuid.UUID
			value   decimal.Decimal
		)
		if err = rows.Scan(&storeID, &value); err != nil {
			return nil, err
		}

		var shipment OrderShipmentView
		if shipment.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if shipment.Value, err = kernel.NewMoney(value); err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
