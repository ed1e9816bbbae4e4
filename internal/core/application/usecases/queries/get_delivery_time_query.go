package queries

import (
	"errors"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetDeliveryTimeQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetDeliveryTimeQueryIsNotConstructed = errors.New(
	"GetDeliveryTimeQuery must be created via NewGetDeliveryTimeQuery constructor",
)

// GetDeliveryTimeQuery reads the recorded time of one lifecycle stage of an order's delivery.
type GetDeliveryTimeQuery struct {
	orderID kernel.UUID
	stage   delivery.Stage
	guard   guard.ConstructorGuard
}

// NewGetDeliveryTimeQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetDeliveryTimeQuery(orderID kernel.UUID, stage delivery.Stage) (GetDeliveryTimeQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetDeliveryTimeQuery{}, err
	}
	return GetDeliveryTimeQuery{orderID: orderID, stage: stage, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetDeliveryTimeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTimeQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetDeliveryTimeQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Stage returns which recorded time is requested.
func (q GetDeliveryTimeQuery) Stage() delivery.Stage {
	return q.stage
}
