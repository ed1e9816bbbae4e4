package queries

import (
	"context"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// GetRatingQueryHandler reads ratings through the delivery aggregate.
type GetRatingQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetRatingQueryHandler creates the handler over a DeliveryReader.
func NewGetRatingQueryHandler(deliveries DeliveryReader) GetRatingQueryHandler {
	return GetRatingQueryHandler{deliveries: deliveries}
}

// Handle returns a not-found error with cause delivery.ErrRatingNotFound while the order is
// unrated, and one with cause order.ErrOrderNotFound for unknown orders.
func (h GetRatingQueryHandler) Handle(ctx context.Context, query GetRatingQuery) (delivery.Rating, error) {
	if err := query.Validate(); err != nil {
		return delivery.Rating{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return delivery.Rating{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}

	rating := d.Rating()
	if rating == nil {
		return delivery.Rating{}, errs.NewObjectNotFoundErrorWithCause("rating", query.OrderID().String(), delivery.ErrRatingNotFound)
	}
	return *rating, nil
}
