package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// AttachShipmentCommandHandler asks the quote service for a price and sets
// it on the order. A failed quote leaves the order untouched.
type AttachShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	quotes     ports.ShippingQuoteService
}

func NewAttachShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	quotes ports.ShippingQuoteService,
) AttachShipmentCommandHandler {
	return AttachShipmentCommandHandler{
		uowFactory: uowFactory,
		quotes:     quotes,
	}
}

func (h *AttachShipmentCommandHandler) Handle(ctx context.Context, cmd AttachShipmentCommand) error {
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

	// Fail on a closed order before paying for a quote.
	if err = o.Status().ValidateShipmentMutation(); err != nil {
		return err
	}

	var value kernel.Money
	if tariff, ok := cmd.Tariff(); ok {
		value, err = h.quotes.QuoteWithTariff(ctx, tariff, cmd.Origin(), o.DeliveryAddress())
	} else {
		value, err = h.quotes.Quote(ctx, cmd.Origin(), o.DeliveryAddress())
	}
	if err != nil {
		return err
	}

	if err = o.SetShipment(cmd.StoreID(), value); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
