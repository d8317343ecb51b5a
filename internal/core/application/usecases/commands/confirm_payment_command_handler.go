package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler performs the authoritative stock check and
// consumes stock for a paid order.
//
// The order row and then the product rows are locked inside one transaction,
// so no concurrent payment can consume the same units between the check and
// the decrement. Insufficient stock leaves the order AwaitingPayment and
// writes nothing.
//
// Example:
//
//	cmd, _ := NewConfirmPaymentCommand(orderID, time.Now())
//	err := handler.Handle(ctx, cmd)
//	var stockErr *errs.StockInsufficientError
//	if errors.As(err, &stockErr) {
//	    // tell the buyer which product ran out
//	}
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
}

func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Reject a retried confirmation before locking any stock.
	if _, err = o.Status().ConfirmPayment(); err != nil {
		return err
	}

	stock, err := inventoryRepo.Snapshot(ctx, productIDs(o))
	if err != nil {
		return err
	}

	adjustment, err := o.ConfirmPayment(stock, cmd.PaidAt())
	if err != nil {
		return err
	}

	if err = inventoryRepo.Apply(ctx, adjustment); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func productIDs(o *order.Order) []kernel.UUID {
	items := o.Items()
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID())
	}
	return ids
}
