package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// DefaultLiveTrackingSchedule runs the job every ten seconds (six-field cron spec).
const DefaultLiveTrackingSchedule = "*/10 * * * * *"

// InTransitReader lists the deliveries currently on transit.
type InTransitReader interface {
	Handle(
		ctx context.Context,
		query queries.GetInTransitDeliveriesQuery,
	) ([]queries.GetInTransitDeliveriesQueryResponse, error)
}

// TrackedPosition is one estimated courier position produced by a run.
type TrackedPosition struct {
	OrderID   string
	Latitude  float64
	Longitude float64
	Progress  float64
}

// LiveTrackingJob periodically estimates the position of every delivery on transit, logs it
// and publishes the number of deliveries on transit.
type LiveTrackingJob struct {
	reader    InTransitReader
	estimator services.LiveLocationEstimator
	clock     clock.Clock
	metrics   ports.TrackingMetrics
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLiveTrackingJob creates the job. schedule is a six-field cron expression with seconds;
// Start fails when it does not parse.
func NewLiveTrackingJob(
	reader InTransitReader,
	estimator services.LiveLocationEstimator,
	clk clock.Clock,
	metrics ports.TrackingMetrics,
	schedule string,
	logger *slog.Logger,
) *LiveTrackingJob {
	if schedule == "" {
		schedule = DefaultLiveTrackingSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveTrackingJob{
		reader:    reader,
		estimator: estimator,
		clock:     clk,
		metrics:   metrics,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "live_tracking_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *LiveTrackingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Live tracking job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Live tracking job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running execution to finish.
func (j *LiveTrackingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Live tracking job stopped")
}

// Run performs one tracking pass. Deliveries whose position cannot be estimated are logged
// and skipped.
func (j *LiveTrackingJob) Run(ctx context.Context) ([]TrackedPosition, error) {
	rows, err := j.reader.Handle(ctx, queries.NewGetInTransitDeliveriesQuery())
	if err != nil {
		return nil, err
	}

	now := j.clock.Now()
	positions := make([]TrackedPosition, 0, len(rows))
	for _, row := range rows {
		position, estimateErr := j.estimator.EstimatePosition(row.VendorAddress, row.Destination, row.PickUpTime, now)
		if estimateErr != nil {
			j.logger.WarnContext(ctx, "Cannot estimate position",
				"order_id", row.OrderID.String(), "error", estimateErr)
			continue
		}

		tracked := TrackedPosition{
			OrderID:   row.OrderID.String(),
			Latitude:  position.Latitude(),
			Longitude: position.Longitude(),
			Progress:  j.estimator.Progress(row.PickUpTime, now),
		}
		positions = append(positions, tracked)
		j.logger.DebugContext(ctx, "Delivery position estimated",
			"order_id", tracked.OrderID,
			"latitude", tracked.Latitude,
			"longitude", tracked.Longitude,
			"progress", tracked.Progress)
	}

	if j.metrics != nil {
		j.metrics.InTransit(len(rows))
	}
	return positions, nil
}
