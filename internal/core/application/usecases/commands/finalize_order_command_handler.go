package commands

import (
	"context"
)

// FinalizeOrderCommandHandler moves a cart to AwaitingPayment. It fails with
// errs.MissingShipmentError when a store among the items has no shipment.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{uowFactory: uowFactory}
}

func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Finalize(cmd.PaymentMethod()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
