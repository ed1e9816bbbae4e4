package commands

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// UpdateDeliveryTimeCommandHandler records the ready, pickup and delivered times of
// a delivery.
type UpdateDeliveryTimeCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryTimeCommandHandler creates the handler from a DeliveryUoWFactory.
func NewUpdateDeliveryTimeCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryTimeCommandHandler {
	return UpdateDeliveryTimeCommandHandler{uowFactory: uowFactory}
}

// Handle fails with an order not-found error when the order has no delivery.
func (h UpdateDeliveryTimeCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryTimeCommand) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return notFound(err, "orderID", cmd.OrderID(), order.ErrOrderNotFound)
	}

	if err = d.RecordTime(cmd.Stage(), cmd.At()); err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
