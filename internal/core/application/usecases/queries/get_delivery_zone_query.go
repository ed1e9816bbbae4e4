package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetDeliveryZoneQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetDeliveryZoneQueryIsNotConstructed = errors.New(
	"GetDeliveryZoneQuery must be created via NewGetDeliveryZoneQuery constructor",
)

// GetDeliveryZoneQuery is built with NewGetDeliveryZoneQuery.
type GetDeliveryZoneQuery struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetDeliveryZoneQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetDeliveryZoneQuery(vendorID kernel.UUID) (GetDeliveryZoneQuery, error) {
	if err := wrapInvalid("vendor id", vendorID.Validate()); err != nil {
		return GetDeliveryZoneQuery{}, err
	}
	return GetDeliveryZoneQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetDeliveryZoneQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryZoneQueryIsNotConstructed)
}

// VendorID returns the vendor being looked up.
func (q GetDeliveryZoneQuery) VendorID() kernel.UUID {
	return q.vendorID
}
