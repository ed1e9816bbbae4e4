package commands

import (
	"context"

	"tracking/internal/core/domain/model/vendor"
)

// UpdateDeliveryZoneCommandHandler replaces the delivery zone of a vendor. Orders
// already stored keep their status.
type UpdateDeliveryZoneCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateDeliveryZoneCommandHandler creates the handler from a VendorUoWFactory.
func NewUpdateDeliveryZoneCommandHandler(uowFactory VendorUoWFactory) UpdateDeliveryZoneCommandHandler {
	return UpdateDeliveryZoneCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated vendor, or errs.ErrObjectNotFound for an unknown one.
func (h UpdateDeliveryZoneCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryZoneCommand) (*vendor.Vendor, error) {
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

	repo := uow.VendorRepository()
	v, err := repo.Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, notFound(err, "vendorID", cmd.VendorID(), vendor.ErrVendorNotFound)
	}

	if err = v.UpdateDeliveryZone(cmd.Radius()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
