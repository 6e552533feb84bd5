// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field in the schedule.
//
// # Available Jobs
//
// 1. AvailabilityRefreshJob - re-reads on-hand stock for every line of the Draft and
// Waiting deliveries. It never changes an order status; a Waiting delivery becomes
// Ready only through an explicit validate.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Overlapping passes are skipped.
package jobs
