// Package ports declares what the tracking core needs from the outside world: persistence,
// the remote Users and Orders services, and metrics.
//
// Repositories signal absence with *errs.ObjectNotFoundError (errors.Is(err, errs.ErrObjectNotFound));
// the application layer turns it into the entity-specific not-found error.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderRepository persists the status-bearing order rows. Orders are created together with
// their delivery through DeliveryRepository.Add.
type OrderRepository interface {
	// Get retrieves an order by id.
	// Returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Exists reports whether an order with the id is stored. Used to refuse duplicate
	// deliveries before anything is written.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Update rewrites the order's status.
	Update(ctx context.Context, aggregate *order.Order) error
}
