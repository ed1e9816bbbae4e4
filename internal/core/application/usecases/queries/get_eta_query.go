package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetEtaQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetEtaQueryIsNotConstructed = errors.New(
	"GetEtaQuery must be created via NewGetEtaQuery constructor",
)

// GetEtaQuery is built with NewGetEtaQuery.
type GetEtaQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetEtaQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetEtaQuery(orderID kernel.UUID) (GetEtaQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetEtaQuery{}, err
	}
	return GetEtaQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetEtaQuery) Validate() error {
	return q.guard.Validate(ErrGetEtaQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetEtaQuery) OrderID() kernel.UUID {
	return q.orderID
}
