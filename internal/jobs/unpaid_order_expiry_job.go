package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the sweep at the start of every minute.
const DefaultExpirySchedule = "0 * * * * *"

// ExpireUnpaidOrdersHandler is implemented by commands.ExpireUnpaidOrdersCommandHandler.
type ExpireUnpaidOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) (int, error)
}

// UnpaidOrderExpiryConfig tunes the sweep. Orders still awaiting payment
// PaymentWindow after creation are cancelled, BatchSize per transaction.
type UnpaidOrderExpiryConfig struct {
	Schedule      string
	PaymentWindow time.Duration
	BatchSize     int
}

// UnpaidOrderExpiryJob cancels orders whose payment never arrived.
// Each tick drains the backlog batch by batch, so a long outage is caught up
// in one run.
type UnpaidOrderExpiryJob struct {
	handler ExpireUnpaidOrdersHandler
	config  UnpaidOrderExpiryConfig
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewUnpaidOrderExpiryJob(
	handler ExpireUnpaidOrdersHandler,
	config UnpaidOrderExpiryConfig,
	logger *slog.Logger,
) (*UnpaidOrderExpiryJob, error) {
	if config.Schedule == "" {
		config.Schedule = DefaultExpirySchedule
	}
	if config.PaymentWindow <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("payment window", config.PaymentWindow, "1ns", "unbounded")
	}
	if config.BatchSize <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("batch size", config.BatchSize, 1, "unbounded")
	}

	return &UnpaidOrderExpiryJob{
		handler: handler,
		config:  config,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "unpaid_order_expiry_job"),
	}, nil
}

// Start schedules the sweep.
func (j *UnpaidOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job started",
		"schedule", j.config.Schedule,
		"payment_window", j.config.PaymentWindow.String(),
	)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *UnpaidOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job stopped")
}

// Run performs one sweep and returns how many orders it cancelled. The
// cutoff is fixed at the start so orders crossing it mid-run wait for the
// next tick.
func (j *UnpaidOrderExpiryJob) Run(ctx context.Context) int {
	cutoff := j.now().Add(-j.config.PaymentWindow)

	total := 0
	for {
		cmd, err := commands.NewExpireUnpaidOrdersCommand(cutoff, j.config.BatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order expiry job misconfigured", "error", err)
			return total
		}

		n, err := j.handler.Handle(ctx, cmd)
		total += n
		if err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order expiry job failed", "error", err, "cancelled", total)
			return total
		}
		if n < j.config.BatchSize {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Unpaid orders cancelled", "count", total, "created_before", cutoff)
	}
	return total
}
