package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetVendorAverageQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetVendorAverageQueryIsNotConstructed = errors.New(
	"GetVendorAverageQuery must be created via NewGetVendorAverageQuery constructor",
)

// GetVendorAverageQuery reads the mean pickup-to-delivery time of a vendor's orders.
type GetVendorAverageQuery struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetVendorAverageQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetVendorAverageQuery(vendorID kernel.UUID) (GetVendorAverageQuery, error) {
	if err := wrapInvalid("vendor id", vendorID.Validate()); err != nil {
		return GetVendorAverageQuery{}, err
	}
	return GetVendorAverageQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetVendorAverageQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorAverageQueryIsNotConstructed)
}

// VendorID returns the vendor being looked up.
func (q GetVendorAverageQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// GetVendorAverageQueryResponse holds the mean over Deliveries timed orders. Average is zero
// when Deliveries is zero.
type GetVendorAverageQueryResponse struct {
	Average    time.Duration
	Deliveries int
}
