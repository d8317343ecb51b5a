package commands

import (
	"context"
)

// ExpireUnpaidOrdersCommandHandler cancels abandoned checkouts so their
// carts stop counting as open orders. Unpaid orders never consumed stock, so
// no inventory is touched; the batch commits as one transaction.
type ExpireUnpaidOrdersCommandHandler struct {
	uowFactory UoWFactory
}

func NewExpireUnpaidOrdersCommandHandler(uowFactory UoWFactory) ExpireUnpaidOrdersCommandHandler {
	return ExpireUnpaidOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many orders were cancelled.
func (h *ExpireUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireUnpaidOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAwaitingPaymentCreatedBefore(ctx, cmd.CreatedBefore(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	if len(orders) == 0 {
		return 0, nil
	}

	for _, o := range orders {
		if err = cancel(ctx, o, orderRepo, uow); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
