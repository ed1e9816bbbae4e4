package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetRatingQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetRatingQueryIsNotConstructed = errors.New(
	"GetRatingQuery must be created via NewGetRatingQuery constructor",
)

// GetRatingQuery reads the customer's rating of an order.
type GetRatingQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetRatingQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetRatingQuery(orderID kernel.UUID) (GetRatingQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetRatingQuery{}, err
	}
	return GetRatingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRatingQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetRatingQuery) OrderID() kernel.UUID {
	return q.orderID
}
