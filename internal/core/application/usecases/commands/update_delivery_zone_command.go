package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrUpdateDeliveryZoneCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrUpdateDeliveryZoneCommandIsNotConstructed = errors.New(
	"UpdateDeliveryZoneCommand must be created via NewUpdateDeliveryZoneCommand",
)

// UpdateDeliveryZoneCommand does not check the radius itself: a vendor without couriers
// refuses every radius, so the vendor decides.
type UpdateDeliveryZoneCommand struct {
	vendorID kernel.UUID
	radius   float64
	guard    guard.ConstructorGuard
}

// NewUpdateDeliveryZoneCommand rejects negative or non-finite radii.
func NewUpdateDeliveryZoneCommand(vendorID kernel.UUID, radius float64) (UpdateDeliveryZoneCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return UpdateDeliveryZoneCommand{}, wrapInvalid("vendor id", err)
	}
	return UpdateDeliveryZoneCommand{vendorID: vendorID, radius: radius, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrUpdateDeliveryZoneCommandIsNotConstructed otherwise.
func (c UpdateDeliveryZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryZoneCommandIsNotConstructed)
}

// VendorID returns the vendor whose zone changes.
func (c UpdateDeliveryZoneCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Radius returns the new zone radius.
func (c UpdateDeliveryZoneCommand) Radius() float64 {
	return c.radius
}
