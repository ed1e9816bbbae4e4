package services

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// DefaultTransitDuration is the assumed time between pickup and arrival.
const DefaultTransitDuration = time.Hour

// LiveLocationEstimator places an in-transit order on the straight route from the vendor to
// the destination, proportionally to the time elapsed since pickup.
type LiveLocationEstimator struct {
	transit time.Duration
}

// NewLiveLocationEstimator uses DefaultTransitDuration when transit is not positive.
func NewLiveLocationEstimator(transit time.Duration) LiveLocationEstimator {
	if transit <= 0 {
		transit = DefaultTransitDuration
	}
	return LiveLocationEstimator{transit: transit}
}

// TransitDuration returns the window over which the route is interpolated.
func (e LiveLocationEstimator) TransitDuration() time.Duration {
	return e.transit
}

// Progress returns the travelled share of the route, clamped to [0, 1]. It is 0 while the
// order has not been picked up or when the pickup lies in the future.
func (e LiveLocationEstimator) Progress(pickUp *time.Time, now time.Time) float64 {
	if pickUp == nil || pickUp.After(now) {
		return 0
	}
	fraction := float64(now.Sub(*pickUp)) / float64(e.transitOrDefault())
	return min(max(fraction, 0), 1)
}

// EstimatePosition returns start before pickup and end once the transit duration has elapsed.
func (e LiveLocationEstimator) EstimatePosition(
	start kernel.Location,
	end kernel.Location,
	pickUp *time.Time,
	now time.Time,
) (kernel.Location, error) {
	if err := start.Validate(); err != nil {
		return kernel.Location{}, err
	}
	if pickUp == nil || pickUp.After(now) {
		return start, nil
	}

	return start.Interpolate(end, e.Progress(pickUp, now))
}

func (e LiveLocationEstimator) transitOrDefault() time.Duration {
	if e.transit <= 0 {
		return DefaultTransitDuration
	}
	return e.transit
}
