package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetCourierOfOrderQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetCourierOfOrderQueryIsNotConstructed = errors.New(
	"GetCourierOfOrderQuery must be created via NewGetCourierOfOrderQuery constructor",
)

// GetCourierOfOrderQuery is built with NewGetCourierOfOrderQuery.
type GetCourierOfOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetCourierOfOrderQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetCourierOfOrderQuery(orderID kernel.UUID) (GetCourierOfOrderQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetCourierOfOrderQuery{}, err
	}
	return GetCourierOfOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetCourierOfOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOfOrderQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetCourierOfOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
