package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns one page of summaries. ItemCount sums line quantities and
// GrandTotal adds shipping to the item subtotals.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (*GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var summaries []OrderSummary
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			index map[uuid.UUID]int
			err   error
		)
		if summaries, index, err = h.readOrders(tx, query); err != nil {
			return err
		}
		if len(summaries) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(summaries))
		for _, s := range summaries {
			ids = append(ids, s.ID.Bytes())
		}

		err = h.scanAmounts(tx, `
			SELECT order_id, quantity, quantity * unit_price
			FROM order_line_items
			WHERE order_id IN ?
		`, ids, func(orderID uuid.UUID, quantity int, amount decimal.Decimal) {
			s := &summaries[index[orderID]]
			s.ItemCount += quantity
			s.GrandTotal = s.GrandTotal.Add(storedMoney(amount))
		})
		if err != nil {
			return err
		}

		return h.scanAmounts(tx, `
			SELECT order_id, 0, value
			FROM order_shipments
			WHERE order_id IN ?
		`, ids, func(orderID uuid.UUID, _ int, amount decimal.Decimal) {
			s := &summaries[index[orderID]]
			s.GrandTotal = s.GrandTotal.Add(storedMoney(amount))
		})
	}, snapshotRead)
	if err != nil {
		return nil, err
	}

	return &GetCustomerOrdersQueryResponse{Orders: summaries}, nil
}

func (h GetCustomerOrdersQueryHandler) readOrders(
	db *gorm.DB,
	query GetCustomerOrdersQuery,
) ([]OrderSummary, map[uuid.UUID]int, error) {
	rows, err := db.Raw(`
		SELECT id, status, payment_method, created_at, paid_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.CustomerID().Bytes(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id             uuid.UUID
			status, method int
			createdAt      time.Time
			paidAt         *time.Time
		)
		if err = rows.Scan(&id, &status, &method, &createdAt, &paidAt); err != nil {
			return nil, nil, err
		}

		var orderID kernel.UUID
		if orderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}

		index[id] = len(summaries)
		summaries = append(summaries, OrderSummary{
			ID:            orderID,
			Status:        order.Status(status),
			PaymentMethod: order.PaymentMethod(method),
			CreatedAt:     createdAt.UTC(),
			PaidAt:        utcOrNil(paidAt),
			GrandTotal:    kernel.ZeroMoney(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return summaries, index, nil
}

func (h GetCustomerOrdersQueryHandler) scanAmounts(
	db *gorm.DB,
	sql string,
	ids []uuid.UUID,
	add func(orderID uuid.UUID, quantity int, amount decimal.Decimal),
) error {
	rows, err := db.Raw(sql, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			quantity int
			amount   decimal.Decimal
		)
		if err = rows.Scan(&orderID, &quantity, &amount); err != nil {
			return err
		}
		add(orderID, quantity, amount)
	}

	return rows.Err()
}

// storedMoney converts a stored amount. Columns hold non-negative
// numeric(12,2) values, so NewMoney cannot fail for them.
func storedMoney(amount decimal.Decimal) kernel.Money {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return m
}
