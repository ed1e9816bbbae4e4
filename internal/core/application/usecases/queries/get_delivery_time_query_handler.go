package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// GetDeliveryTimeQueryHandler reads one recorded stage time.
type GetDeliveryTimeQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetDeliveryTimeQueryHandler creates the handler over a DeliveryReader.
func NewGetDeliveryTimeQueryHandler(deliveries DeliveryReader) GetDeliveryTimeQueryHandler {
	return GetDeliveryTimeQueryHandler{deliveries: deliveries}
}

// Handle returns the stage time. An unset stage yields an ObjectNotFoundError whose cause
// is delivery.ErrTimeNotSet.
func (h GetDeliveryTimeQueryHandler) Handle(ctx context.Context, query GetDeliveryTimeQuery) (time.Time, error) {
	if err := query.Validate(); err != nil {
		return time.Time{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return time.Time{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}

	t, ok := d.Time().Lookup(query.Stage())
	if !ok {
		return time.Time{}, errs.NewObjectNotFoundErrorWithCause(
			query.Stage().String()+" time", query.OrderID().String(), delivery.ErrTimeNotSet)
	}
	return t, nil
}
