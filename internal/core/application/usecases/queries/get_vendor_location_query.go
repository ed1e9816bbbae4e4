package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetVendorLocationQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetVendorLocationQueryIsNotConstructed = errors.New(
	"GetVendorLocationQuery must be created via NewGetVendorLocationQuery constructor",
)

// GetVendorLocationQuery is built with NewGetVendorLocationQuery.
type GetVendorLocationQuery struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetVendorLocationQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetVendorLocationQuery(vendorID kernel.UUID) (GetVendorLocationQuery, error) {
	if err := wrapInvalid("vendor id", vendorID.Validate()); err != nil {
		return GetVendorLocationQuery{}, err
	}
	return GetVendorLocationQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetVendorLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorLocationQueryIsNotConstructed)
}

// VendorID returns the vendor being looked up.
func (q GetVendorLocationQuery) VendorID() kernel.UUID {
	return q.vendorID
}
