package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	availabilityRefreshJob *AvailabilityRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshHandler AvailabilityRefresher,
	refreshSchedule string,
	logger *logrus.Logger,
) *JobManager {
	return &JobManager{
		availabilityRefreshJob: NewAvailabilityRefreshJob(refreshHandler, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.availabilityRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start availability refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.availabilityRefreshJob.Stop()
}
