package commands

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrExpireUnpaidOrdersCommandIsNotConstructed = errors.New(
	"ExpireUnpaidOrdersCommand must be created via NewExpireUnpaidOrdersCommand constructor",
)

// ExpireUnpaidOrdersCommand cancels one batch of orders that have been
// awaiting payment since before the cutoff.
type ExpireUnpaidOrdersCommand struct { //nolint:recvcheck //using for validation
	createdBefore time.Time
	batchSize     int

	guard guard.ConstructorGuard
}

func NewExpireUnpaidOrdersCommand(createdBefore time.Time, batchSize int) (ExpireUnpaidOrdersCommand, error) {
	cmd := ExpireUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errCutoff, errBatch error
	if createdBefore.IsZero() {
		errCutoff = errs.NewValueIsRequiredError("created before")
	}
	if batchSize <= 0 {
		errBatch = errs.NewValueIsInvalidErrorWithCause(
			"batch size is invalid",
			fmt.Errorf("%d is not greater than 0", batchSize),
		)
	}

	if err := errors.Join(errCutoff, errBatch); err != nil {
		return ExpireUnpaidOrdersCommand{}, err
	}

	cmd.createdBefore = createdBefore
	cmd.batchSize = batchSize
	return cmd, nil
}

func (c ExpireUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireUnpaidOrdersCommandIsNotConstructed)
}

func (c ExpireUnpaidOrdersCommand) CreatedBefore() time.Time { return c.createdBefore }
func (c ExpireUnpaidOrdersCommand) BatchSize() int           { return c.batchSize }
