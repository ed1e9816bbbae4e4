package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// CreateDeliveryCommandHandler creates an order and its delivery in one transaction. Orders
// outside of the vendor's delivery zone are stored directly as REJECTED.
type CreateDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	provisioner VendorProvisioner
	zones       services.DeliveryZoneValidator
	metrics     ports.TrackingMetrics
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a UoWFactory for transactional persistence and a VendorProvisioner
// for vendors seen for the first time.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	provisioner VendorProvisioner,
	metrics ports.TrackingMetrics,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory:  uowFactory,
		provisioner: provisioner,
		zones:       services.NewDeliveryZoneValidator(),
		metrics:     metrics,
	}
}

// Handle returns the stored delivery, PENDING or REJECTED.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
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

	taken, err := uow.OrderRepository().Exists(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", order.ErrOrderAlreadyExists, cmd.OrderID())
	}

	zone, err := h.zones.Evaluate(v.Address(), cmd.Destination(), v.DeliveryZone())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.VendorID(), cmd.CustomerID(), cmd.Destination())
	if err != nil {
		return nil, err
	}
	if !zone.WithinZone {
		if err = o.Reject(); err != nil {
			return nil, err
		}
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o)
	if err != nil {
		return nil, err
	}
	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if !zone.WithinZone && h.metrics != nil {
		h.metrics.ZoneRejected()
	}
	return d, nil
}
