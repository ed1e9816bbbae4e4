package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
)

// AssignCourierToDeliveryCommandHandler binds a courier to an order. Only couriers in the
// set of the order's vendor are accepted.
type AssignCourierToDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierToDeliveryCommandHandler creates the handler.
// It needs the full UoW because the vendor is read alongside the delivery.
func NewAssignCourierToDeliveryCommandHandler(uowFactory UoWFactory) AssignCourierToDeliveryCommandHandler {
	return AssignCourierToDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle writes the courier onto the delivery.
//
// Returns:
//	- errs.ErrObjectNotFound for an unknown order or vendor
//	- vendor.ErrCourierNotFound when the courier is not in the vendor's set
func (h AssignCourierToDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignCourierToDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()
	d, err := deliveries.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return notFound(err, "orderID", cmd.OrderID(), order.ErrOrderNotFound)
	}

	vendorID := d.Order().VendorID()
	v, err := uow.VendorRepository().Get(ctx, vendorID)
	if err != nil {
		return notFound(err, "vendorID", vendorID, vendor.ErrVendorNotFound)
	}
	if !v.HasCourier(cmd.CourierID()) {
		return fmt.Errorf("%w: courier %s, vendor %s", vendor.ErrCourierNotAssigned, cmd.CourierID(), vendorID)
	}

	if err = d.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}
	if err = deliveries.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
