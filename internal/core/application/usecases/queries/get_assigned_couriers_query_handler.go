package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
)

// GetAssignedCouriersQueryHandler lists the courier set of a vendor.
type GetAssignedCouriersQueryHandler struct {
	vendors VendorReader
}

// NewGetAssignedCouriersQueryHandler creates the handler over a VendorReader.
func NewGetAssignedCouriersQueryHandler(vendors VendorReader) GetAssignedCouriersQueryHandler {
	return GetAssignedCouriersQueryHandler{vendors: vendors}
}

// Handle returns the couriers in insertion order. The slice is empty, not nil, for a
// vendor without couriers.
func (h GetAssignedCouriersQueryHandler) Handle(ctx context.Context, query GetAssignedCouriersQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	v, err := h.vendors.Get(ctx, query.VendorID())
	if err != nil {
		return nil, notFound(err, "vendorID", query.VendorID(), vendor.ErrVendorNotFound)
	}

	return v.Couriers(), nil
}
