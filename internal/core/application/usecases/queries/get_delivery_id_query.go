package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetDeliveryIDQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetDeliveryIDQueryIsNotConstructed = errors.New(
	"GetDeliveryIDQuery must be created via NewGetDeliveryIDQuery constructor",
)

// GetDeliveryIDQuery resolves the delivery that owns an order.
type GetDeliveryIDQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetDeliveryIDQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetDeliveryIDQuery(orderID kernel.UUID) (GetDeliveryIDQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetDeliveryIDQuery{}, err
	}
	return GetDeliveryIDQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetDeliveryIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryIDQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetDeliveryIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
