package ports

import (
	"context"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// A delivery owns its order, so the order row is written with it; the time record,
// the issue and the rating travel inline with the delivery.
type DeliveryRepository interface {
	// Add inserts the delivery and its order in one statement group.
	// Fails when a delivery already exists for the order.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID loads the delivery owned by the order, order included.
	// Returns *errs.ObjectNotFoundError when the order has no delivery.
	//
	// Example:
	//   d, err := repo.GetByOrderID(ctx, orderID)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return errs.NewObjectNotFoundErrorWithCause("orderID", orderID.String(), order.ErrOrderNotFound)
	//   }
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// Update writes the delivery row and the status of its order.
	// Returns *errs.ObjectNotFoundError when the delivery was never added.
	Update(ctx context.Context, aggregate *delivery.Delivery) error
}
