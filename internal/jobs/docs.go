// Package jobs provides scheduled background tasks for the settlement service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the delivery order backlog.
//
// # Available Jobs
//
// 1. PendingDeliveriesJob - Runs every 30 seconds to report delivery orders still waiting for a vehicle
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getPendingDeliveriesHandler, logger)
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
// The backlog job uses the cron expression "*/30 * * * * *", running every
// 30 seconds. The backlog only changes when customers create orders or
// vehicles accept them, so a tighter schedule would add noise without value.
//
// # Error Handling
//
// - The backlog job logs every error as it indicates a storage issue
// - Failed job starts will stop any already running jobs
package jobs
