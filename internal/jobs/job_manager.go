// Package jobs provides scheduled background tasks for the mill, built on
// github.com/robfig/cron/v3. Jobs are wired up and started through
// JobManager:
//
//	jobManager := jobs.NewJobManager(getAllBinsHandler, getStorageHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"flourmill/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	inventorySnapshotJob *InventorySnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	binsHandler queries.GetAllBinsQueryHandler,
	storageHandler queries.GetStorageLocationsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		inventorySnapshotJob: NewInventorySnapshotJob(binsHandler, storageHandler, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails to
// start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventorySnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inventorySnapshotJob.Stop()
}
