package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetLiveLocationQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetLiveLocationQueryIsNotConstructed = errors.New(
	"GetLiveLocationQuery must be created via NewGetLiveLocationQuery constructor",
)

// GetLiveLocationQuery asks for the estimated current position of an order in transit.
type GetLiveLocationQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetLiveLocationQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetLiveLocationQuery(orderID kernel.UUID) (GetLiveLocationQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetLiveLocationQuery{}, err
	}
	return GetLiveLocationQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetLiveLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveLocationQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetLiveLocationQuery) OrderID() kernel.UUID {
	return q.orderID
}
