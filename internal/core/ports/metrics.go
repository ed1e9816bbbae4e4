package ports

import "tracking/internal/core/domain/model/order"

// TrackingMetrics receives business events worth counting. Implementations must be safe for
// concurrent use; handlers call them from request goroutines and the tracking job.
type TrackingMetrics interface {
	// StatusChanged counts one committed transition into the given status.
	StatusChanged(to order.Status)
	// ZoneRejected counts a delivery refused at creation because its destination lies
	// outside the vendor's zone.
	ZoneRejected()
	// InTransit sets the number of deliveries currently ON_TRANSIT.
	InTransit(count int)
}
