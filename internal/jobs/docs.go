// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// (seconds-resolution schedules).
//
// # Available Jobs
//
// 1. UnpaidOrderExpiryJob - cancels orders still awaiting payment after the
// configured payment window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	expiry, err := jobs.NewUnpaidOrderExpiryJob(expireHandler, jobs.UnpaidOrderExpiryConfig{
//		Schedule:      "0 * * * * *",
//		PaymentWindow: 72 * time.Hour,
//		BatchSize:     100,
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed batch ends the sweep; the next tick retries from the cutoff
// - Failed job starts will stop any already running jobs
package jobs
