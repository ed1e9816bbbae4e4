package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrGetCourierStatisticsQueryIsNotConstructed is returned by Validate on a zero-value query.
var ErrGetCourierStatisticsQueryIsNotConstructed = errors.New(
	"GetCourierStatisticsQuery must be created via NewGetCourierStatisticsQuery constructor",
)

// GetCourierStatisticsQuery aggregates the delivery history of one courier.
//
// Example:
//
//	query, err := NewGetCourierStatisticsQuery(courierID)
//	if err != nil {
//	    return err
//	}
//	stats, err := handler.Handle(ctx, query)
//	if errors.Is(err, vendor.ErrCourierNotFound) {
//	    // neither hired by a vendor nor ever assigned to a delivery
//	}
type GetCourierStatisticsQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetCourierStatisticsQuery validates its arguments and returns errs.ErrValueIsInvalid
// for a malformed id.
func NewGetCourierStatisticsQuery(courierID kernel.UUID) (GetCourierStatisticsQuery, error) {
	if err := wrapInvalid("courier id", courierID.Validate()); err != nil {
		return GetCourierStatisticsQuery{}, err
	}
	return GetCourierStatisticsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetCourierStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatisticsQueryIsNotConstructed)
}

// CourierID returns the courier being measured.
func (q GetCourierStatisticsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierStatisticsQueryResponse is the courier read model.
//
//   - SuccessfulDeliveries counts DELIVERED orders of the courier.
//   - DeliveriesPerDay divides the dated deliveries by the distinct UTC days they fall on.
//   - Efficiency is the share, in percent, of timed deliveries that took no longer than the
//     transit duration from pickup to delivery.
//   - Issues lists the reported issues in order id order.
type GetCourierStatisticsQueryResponse struct {
	SuccessfulDeliveries int
	DeliveriesPerDay     int
	Efficiency           int
	Issues               []string
}
