package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	liveTrackingJob *LiveTrackingJob
}

// NewJobManager creates a manager for the live tracking job.
func NewJobManager(liveTrackingJob *LiveTrackingJob) *JobManager {
	return &JobManager{liveTrackingJob: liveTrackingJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.liveTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start live tracking job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.liveTrackingJob.Stop()
}
