// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StuckOrderMonitorJob - Runs every minute to report orders stuck in the canceling state
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stuckOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The monitor job uses the cron expression "0 * * * * *" which means it runs
// once a minute. Stuck orders indicate a compensation flow that never
// completed, so minute-level granularity is enough.
//
// # Error Handling
//
// - Monitor job logs query failures and every stuck order it finds
// - Failed job starts will stop any already running jobs
package jobs
