package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// GetDeliveryIDQueryHandler maps an order id to its delivery id.
type GetDeliveryIDQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetDeliveryIDQueryHandler creates the handler over a DeliveryReader.
func NewGetDeliveryIDQueryHandler(deliveries DeliveryReader) GetDeliveryIDQueryHandler {
	return GetDeliveryIDQueryHandler{deliveries: deliveries}
}

// Handle fails with an order not-found error for unknown orders.
func (h GetDeliveryIDQueryHandler) Handle(ctx context.Context, query GetDeliveryIDQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return kernel.UUID{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}
	return d.ID(), nil
}
