package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"
)

// GetCourierOfOrderQueryHandler answers which courier carries an order.
type GetCourierOfOrderQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetCourierOfOrderQueryHandler creates the handler over a DeliveryReader.
func NewGetCourierOfOrderQueryHandler(deliveries DeliveryReader) GetCourierOfOrderQueryHandler {
	return GetCourierOfOrderQueryHandler{deliveries: deliveries}
}

// Handle returns the courier bound to the order's delivery, or a CourierNotFound error while
// none is assigned.
func (h GetCourierOfOrderQueryHandler) Handle(ctx context.Context, query GetCourierOfOrderQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return kernel.UUID{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}

	courierID := d.CourierID()
	if courierID == nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("courierID", query.OrderID().String(), vendor.ErrCourierNotFound)
	}
	return *courierID, nil
}
