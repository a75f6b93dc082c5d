// Package jobs provides scheduled background tasks for the scheduling engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the engine needs.
//
// # Available Jobs
//
// 1. AutomationDispatchJob - Runs every five seconds to drain the automation
// outbox and execute trigger actions for pending domain events
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed drain pass is logged and retried on the next tick; outbox rows
// keep their attempt counters so poison rows do not loop forever
// - Failed job starts will stop any already running jobs
package jobs
