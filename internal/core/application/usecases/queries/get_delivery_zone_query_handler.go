package queries

import (
	"context"

	"tracking/internal/core/domain/model/vendor"
)

// GetDeliveryZoneQueryHandler reads the delivery zone radius of a vendor.
type GetDeliveryZoneQueryHandler struct {
	vendors VendorReader
}

// NewGetDeliveryZoneQueryHandler creates the handler over a VendorReader.
func NewGetDeliveryZoneQueryHandler(vendors VendorReader) GetDeliveryZoneQueryHandler {
	return GetDeliveryZoneQueryHandler{vendors: vendors}
}

// Handle fails with a vendor not-found error for unknown vendors.
func (h GetDeliveryZoneQueryHandler) Handle(ctx context.Context, query GetDeliveryZoneQuery) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	v, err := h.vendors.Get(ctx, query.VendorID())
	if err != nil {
		return 0, notFound(err, "vendorID", query.VendorID(), vendor.ErrVendorNotFound)
	}
	return v.DeliveryZone(), nil
}
