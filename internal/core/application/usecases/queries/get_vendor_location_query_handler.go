package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
)

// GetVendorLocationQueryHandler reads the address of a vendor.
type GetVendorLocationQueryHandler struct {
	vendors VendorReader
}

// NewGetVendorLocationQueryHandler creates the handler over a VendorReader.
func NewGetVendorLocationQueryHandler(vendors VendorReader) GetVendorLocationQueryHandler {
	return GetVendorLocationQueryHandler{vendors: vendors}
}

// Handle fails with a vendor not-found error for unknown vendors.
func (h GetVendorLocationQueryHandler) Handle(ctx context.Context, query GetVendorLocationQuery) (kernel.Location, error) {
	if err := query.Validate(); err != nil {
		return kernel.Location{}, err
	}

	v, err := h.vendors.Get(ctx, query.VendorID())
	if err != nil {
		return kernel.Location{}, notFound(err, "vendorID", query.VendorID(), vendor.ErrVendorNotFound)
	}
	return v.Address(), nil
}
