package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrFindOrCreateVendorCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrFindOrCreateVendorCommandIsNotConstructed = errors.New(
	"FindOrCreateVendorCommand must be created via NewFindOrCreateVendorCommand",
)

// FindOrCreateVendorCommand names a vendor that should exist.
type FindOrCreateVendorCommand struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewFindOrCreateVendorCommand validates the vendor id.
func NewFindOrCreateVendorCommand(vendorID kernel.UUID) (FindOrCreateVendorCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return FindOrCreateVendorCommand{}, err
	}
	return FindOrCreateVendorCommand{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrFindOrCreateVendorCommandIsNotConstructed otherwise.
func (c FindOrCreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrFindOrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the vendor to provision.
func (c FindOrCreateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}
