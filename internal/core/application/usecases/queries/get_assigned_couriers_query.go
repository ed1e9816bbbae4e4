package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetAssignedCouriersQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetAssignedCouriersQueryIsNotConstructed = errors.New(
	"GetAssignedCouriersQuery must be created via NewGetAssignedCouriersQuery constructor",
)

// GetAssignedCouriersQuery lists the couriers hired by a vendor in the order they were added.
type GetAssignedCouriersQuery struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetAssignedCouriersQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetAssignedCouriersQuery(vendorID kernel.UUID) (GetAssignedCouriersQuery, error) {
	if err := wrapInvalid("vendor id", vendorID.Validate()); err != nil {
		return GetAssignedCouriersQuery{}, err
	}
	return GetAssignedCouriersQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetAssignedCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedCouriersQueryIsNotConstructed)
}

// VendorID returns the vendor being looked up.
func (q GetAssignedCouriersQuery) VendorID() kernel.UUID {
	return q.vendorID
}
