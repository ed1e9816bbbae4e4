package commands

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// RateDeliveryCommandHandler stores a rating on the delivery of an order.
type RateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRateDeliveryCommandHandler returns a handler writing through DeliveryUoW.
func NewRateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle replaces any earlier rating of the order.
//
// Returns:
//   - errs.ErrObjectNotFound wrapping order.ErrOrderNotFound for unknown orders
//   - delivery.ErrDeliveryIsNotDelivered while the order is not DELIVERED
func (h RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
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

	if err = d.Rate(cmd.Rating()); err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
