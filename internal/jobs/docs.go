// Package jobs provides scheduled background tasks for the tracking service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// LiveTrackingJob reads every delivery on transit, estimates the courier position on the
// vendor-to-destination route, logs it and sets the in-transit gauge.
//
// # Usage
//
//	job := jobs.NewLiveTrackingJob(reader, estimator, clock.NewSystem(), recorder, cfg.TrackingJobSchedule, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
