package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetInTransitDeliveriesQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetInTransitDeliveriesQueryIsNotConstructed = errors.New(
	"GetInTransitDeliveriesQuery must be created via NewGetInTransitDeliveriesQuery constructor",
)

// GetInTransitDeliveriesQuery lists every delivery whose order is ON_TRANSIT together with
// the route endpoints needed to estimate its position.
//
// Example:
//
//	handler := NewGetInTransitDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, NewGetInTransitDeliveriesQuery())
//	if err != nil {
//	    return fmt.Errorf("list in-transit deliveries: %w", err)
//	}
type GetInTransitDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInTransitDeliveriesQuery returns the query. It carries no arguments.
func NewGetInTransitDeliveriesQuery() GetInTransitDeliveriesQuery {
	return GetInTransitDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through its constructor.
func (q GetInTransitDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitDeliveriesQueryIsNotConstructed)
}

// GetInTransitDeliveriesQueryResponse is one row of the in-transit read model.
// PickUpTime is nil when the courier never reported the pickup.
type GetInTransitDeliveriesQueryResponse struct {
	OrderID       kernel.UUID
	VendorAddress kernel.Location
	Destination   kernel.Location
	PickUpTime    *time.Time
}
