package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrAssignCourierToVendorCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrAssignCourierToVendorCommandIsNotConstructed = errors.New(
	"AssignCourierToVendorCommand must be created via NewAssignCourierToVendorCommand",
)

// AssignCourierToVendorCommand adds a courier to the set of a vendor.
type AssignCourierToVendorCommand struct {
	vendorID  kernel.UUID
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewAssignCourierToVendorCommand validates the vendor and courier ids.
func NewAssignCourierToVendorCommand(vendorID kernel.UUID, courierID kernel.UUID) (AssignCourierToVendorCommand, error) {
	if err := errors.Join(
		wrapInvalid("vendor id", vendorID.Validate()),
		wrapInvalid("courier id", courierID.Validate()),
	); err != nil {
		return AssignCourierToVendorCommand{}, err
	}

	return AssignCourierToVendorCommand{
		vendorID:  vendorID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrAssignCourierToVendorCommandIsNotConstructed otherwise.
func (c AssignCourierToVendorCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierToVendorCommandIsNotConstructed)
}

// VendorID returns the vendor to extend.
func (c AssignCourierToVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// CourierID returns the courier to add.
func (c AssignCourierToVendorCommand) CourierID() kernel.UUID {
	return c.courierID
}
