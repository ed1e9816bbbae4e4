package services_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveLocationEstimator_EstimatePosition(t *testing.T) {
	now := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	start := kernel.MustNewLocation(0, 0)
	end := kernel.MustNewLocation(0, 3600)
	estimator := services.NewLiveLocationEstimator(time.Hour)

	pickedUp := func(ago time.Duration) *time.Time {
		ts := now.Add(-ago)
		return &ts
	}

	tests := []struct {
		name     string
		pickUp   *time.Time
		expected kernel.Location
	}{
		{name: "not picked up yet", pickUp: nil, expected: start},
		{name: "pickup scheduled in the future", pickUp: pickedUp(-10 * time.Minute), expected: start},
		{name: "just picked up", pickUp: pickedUp(0), expected: start},
		{name: "half way", pickUp: pickedUp(30 * time.Minute), expected: kernel.MustNewLocation(0, 1800)},
		{name: "quarter way", pickUp: pickedUp(15 * time.Minute), expected: kernel.MustNewLocation(0, 900)},
		{name: "exactly on time", pickUp: pickedUp(time.Hour), expected: end},
		{name: "long overdue never overshoots", pickUp: pickedUp(50 * time.Hour), expected: end},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := estimator.EstimatePosition(start, end, tt.pickUp, now)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("intermediate points lie strictly between the ends", func(t *testing.T) {
		from := kernel.MustNewLocation(10, -10)
		to := kernel.MustNewLocation(-20, 40)

		for _, ago := range []time.Duration{time.Minute, 20 * time.Minute, 59 * time.Minute} {
			got, err := estimator.EstimatePosition(from, to, pickedUp(ago), now)
			require.NoError(t, err)

			assert.Less(t, got.Latitude(), 10.0)
			assert.Greater(t, got.Latitude(), -20.0)
			assert.Greater(t, got.Longitude(), -10.0)
			assert.Less(t, got.Longitude(), 40.0)
		}
	})

	t.Run("unconstructed start", func(t *testing.T) {
		_, err := estimator.EstimatePosition(kernel.Location{}, end, nil, now)
		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestLiveLocationEstimator_Progress(t *testing.T) {
	now := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	pickUp := now.Add(-45 * time.Minute)

	assert.InDelta(t, 0.75, services.NewLiveLocationEstimator(time.Hour).Progress(&pickUp, now), 1e-12)
	assert.InDelta(t, 1.0, services.NewLiveLocationEstimator(30*time.Minute).Progress(&pickUp, now), 0)
	assert.InDelta(t, 0.0, services.NewLiveLocationEstimator(time.Hour).Progress(nil, now), 0)
}

func TestNewLiveLocationEstimator_DefaultsTransit(t *testing.T) {
	assert.Equal(t, services.DefaultTransitDuration, services.NewLiveLocationEstimator(0).TransitDuration())
	assert.Equal(t, services.DefaultTransitDuration, services.NewLiveLocationEstimator(-time.Second).TransitDuration())
	assert.Equal(t, 2*time.Hour, services.NewLiveLocationEstimator(2*time.Hour).TransitDuration())
}
