package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
	"tracking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInTransitReader struct{ mock.Mock }

func (m *MockInTransitReader) Handle(
	ctx context.Context,
	query queries.GetInTransitDeliveriesQuery,
) ([]queries.GetInTransitDeliveriesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetInTransitDeliveriesQueryResponse), args.Error(1)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) StatusChanged(to order.Status) { m.Called(to) }
func (m *MockMetrics) ZoneRejected()                 { m.Called() }
func (m *MockMetrics) InTransit(count int)           { m.Called(count) }

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newJob(reader jobs.InTransitReader, metrics *MockMetrics, schedule string) *jobs.LiveTrackingJob {
	return jobs.NewLiveTrackingJob(reader, services.NewLiveLocationEstimator(time.Hour),
		clock.NewFixed(now), metrics, schedule, slog.New(slog.DiscardHandler))
}

func TestLiveTrackingJob_Run(t *testing.T) {
	// Given
	ctx := t.Context()
	halfWay := now.Add(-30 * time.Minute)
	rows := []queries.GetInTransitDeliveriesQueryResponse{
		{
			OrderID:       kernel.NewUUID(),
			VendorAddress: kernel.MustNewLocation(0, 0),
			Destination:   kernel.MustNewLocation(10, 20),
		},
		{
			OrderID:       kernel.NewUUID(),
			VendorAddress: kernel.MustNewLocation(0, 0),
			Destination:   kernel.MustNewLocation(10, 20),
			PickUpTime:    &halfWay,
		},
	}
	reader, metrics := new(MockInTransitReader), new(MockMetrics)
	reader.On("Handle", ctx, mock.AnythingOfType("queries.GetInTransitDeliveriesQuery")).Return(rows, nil).Once()
	metrics.On("InTransit", 2).Once()

	// When
	positions, err := newJob(reader, metrics, "").Run(ctx)

	// Then
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, rows[0].OrderID.String(), positions[0].OrderID)
	assert.InDelta(t, 0, positions[0].Latitude, 1e-9)
	assert.InDelta(t, 0, positions[0].Progress, 1e-9)
	assert.InDelta(t, 5, positions[1].Latitude, 1e-9)
	assert.InDelta(t, 10, positions[1].Longitude, 1e-9)
	assert.InDelta(t, 0.5, positions[1].Progress, 1e-9)
	reader.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestLiveTrackingJob_Run_ReaderFailureLeavesGaugeAlone(t *testing.T) {
	ctx := t.Context()
	reader, metrics := new(MockInTransitReader), new(MockMetrics)
	reader.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := newJob(reader, metrics, "").Run(ctx)

	require.Error(t, err)
	metrics.AssertNotCalled(t, "InTransit", mock.Anything)
}

func TestLiveTrackingJob_Start_RejectsBadSchedule(t *testing.T) {
	job := newJob(new(MockInTransitReader), new(MockMetrics), "not a cron spec")

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	reader, metrics := new(MockInTransitReader), new(MockMetrics)
	reader.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetInTransitDeliveriesQueryResponse{}, nil).Maybe()
	metrics.On("InTransit", 0).Maybe()
	manager := jobs.NewJobManager(newJob(reader, metrics, "@every 1h"))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
