package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MaxCustomerOrdersPageSize bounds a single page of customer orders.
const MaxCustomerOrdersPageSize = 100

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery validates paging: limit within
// 1..MaxCustomerOrdersPageSize and a non-negative offset.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, limit, offset int) (GetCustomerOrdersQuery, error) {
	var errList []error
	if err := customerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("customer id", err))
	}
	if limit < 1 || limit > MaxCustomerOrdersPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxCustomerOrdersPageSize))
	}
	if offset < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }
func (q GetCustomerOrdersQuery) Limit() int              { return q.limit }
func (q GetCustomerOrdersQuery) Offset() int             { return q.offset }

type GetCustomerOrdersQueryResponse struct {
	Orders []OrderSummary
}

// OrderSummary is one row of a customer's order history.
type OrderSummary struct {
	ID            kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	CreatedAt     time.Time
	PaidAt        *time.Time
	ItemCount     int
	GrandTotal    kernel.Money
}
