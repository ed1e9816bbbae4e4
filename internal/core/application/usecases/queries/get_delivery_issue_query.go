package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetDeliveryIssueQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetDeliveryIssueQueryIsNotConstructed = errors.New(
	"GetDeliveryIssueQuery must be created via NewGetDeliveryIssueQuery constructor",
)

// GetDeliveryIssueQuery is built with NewGetDeliveryIssueQuery.
type GetDeliveryIssueQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetDeliveryIssueQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetDeliveryIssueQuery(orderID kernel.UUID) (GetDeliveryIssueQuery, error) {
	if err := wrapInvalid("order id", orderID.Validate()); err != nil {
		return GetDeliveryIssueQuery{}, err
	}
	return GetDeliveryIssueQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetDeliveryIssueQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryIssueQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetDeliveryIssueQuery) OrderID() kernel.UUID {
	return q.orderID
}
