package queries

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// GetOrderStatusQueryHandler reads the stored status of an order.
type GetOrderStatusQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetOrderStatusQueryHandler creates the handler over a DeliveryReader.
func NewGetOrderStatusQueryHandler(deliveries DeliveryReader) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{deliveries: deliveries}
}

// Handle returns order.Unknown together with any error.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (order.Status, error) {
	if err := query.Validate(); err != nil {
		return order.Unknown, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return order.Unknown, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}
	return d.Order().Status(), nil
}
