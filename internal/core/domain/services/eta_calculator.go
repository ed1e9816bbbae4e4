package services

import (
	"time"

	"tracking/internal/core/domain/model/delivery"
)

// EtaCalculator derives the estimated arrival of a delivery from its time record.
type EtaCalculator struct {
	transit time.Duration
}

// NewEtaCalculator uses DefaultTransitDuration when transit is not positive.
func NewEtaCalculator(transit time.Duration) EtaCalculator {
	if transit <= 0 {
		transit = DefaultTransitDuration
	}
	return EtaCalculator{transit: transit}
}

// Estimate returns, in order of preference: the recorded delivered time, pickup plus the
// transit duration, or now plus the transit duration.
func (c EtaCalculator) Estimate(record delivery.TimeRecord, now time.Time) time.Time {
	transit := c.transit
	if transit <= 0 {
		transit = DefaultTransitDuration
	}

	if delivered, ok := record.Lookup(delivery.StageDelivered); ok {
		return delivered
	}
	if pickUp, ok := record.Lookup(delivery.StagePickUp); ok {
		return pickUp.Add(transit)
	}
	return now.Add(transit)
}
