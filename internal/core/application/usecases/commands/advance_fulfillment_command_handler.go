package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// AdvanceFulfillmentCommandHandler drives Paid -> Preparing -> Shipped ->
// Delivered. Steps cannot be skipped: asking a Paid order to become Shipped
// fails with an IllegalStateTransitionError. No stock moves on these steps.
type AdvanceFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceFulfillmentCommandHandler(uowFactory OrderUoWFactory) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{uowFactory: uowFactory}
}

func (h *AdvanceFulfillmentCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = advance(o, cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func advance(o *order.Order, target order.Status) error {
	switch target {
	case order.Preparing:
		return o.StartPreparation()
	case order.Shipped:
		return o.MarkShipped()
	default:
		return o.MarkDelivered()
	}
}
