package commands

import (
	"context"

	"tracking/internal/core/domain/model/vendor"
)

// FindOrCreateVendorCommandHandler makes a vendor known to the service ahead of its first
// delivery.
type FindOrCreateVendorCommandHandler struct {
	uowFactory  VendorUoWFactory
	provisioner VendorProvisioner
}

// NewFindOrCreateVendorCommandHandler creates the handler from a VendorUoWFactory and
// the shared provisioner.
func NewFindOrCreateVendorCommandHandler(
	uowFactory VendorUoWFactory,
	provisioner VendorProvisioner,
) FindOrCreateVendorCommandHandler {
	return FindOrCreateVendorCommandHandler{uowFactory: uowFactory, provisioner: provisioner}
}

// Handle is idempotent. An existing vendor is returned as stored.
func (h FindOrCreateVendorCommandHandler) Handle(
	ctx context.Context,
	cmd FindOrCreateVendorCommand,
) (*vendor.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := h.provisioner.FindOrCreate(ctx, uow.VendorRepository(), cmd.VendorID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
