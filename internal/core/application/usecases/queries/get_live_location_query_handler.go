package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/clock"
)

// GetLiveLocationQueryHandler interpolates the courier position on the straight route from
// the vendor address to the order destination.
type GetLiveLocationQueryHandler struct {
	deliveries DeliveryReader
	vendors    VendorReader
	estimator  services.LiveLocationEstimator
	clock      clock.Clock
}

// NewGetLiveLocationQueryHandler creates a handler for live location lookups.
// Requires both readers, the estimator and a clock.
func NewGetLiveLocationQueryHandler(
	deliveries DeliveryReader,
	vendors VendorReader,
	estimator services.LiveLocationEstimator,
	clk clock.Clock,
) GetLiveLocationQueryHandler {
	return GetLiveLocationQueryHandler{
		deliveries: deliveries,
		vendors:    vendors,
		estimator:  estimator,
		clock:      clk,
	}
}

// Handle returns the vendor address before pickup and the destination once delivered.
func (h GetLiveLocationQueryHandler) Handle(ctx context.Context, query GetLiveLocationQuery) (kernel.Location, error) {
	if err := query.Validate(); err != nil {
		return kernel.Location{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return kernel.Location{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}

	vendorID := d.Order().VendorID()
	v, err := h.vendors.Get(ctx, vendorID)
	if err != nil {
		return kernel.Location{}, notFound(err, "vendorID", vendorID, vendor.ErrVendorNotFound)
	}

	return h.estimator.EstimatePosition(v.Address(), d.Order().Destination(), d.Time().PickUpTime(), h.clock.Now())
}
