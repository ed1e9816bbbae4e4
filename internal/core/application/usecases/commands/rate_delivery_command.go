package commands

import (
	"errors"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrRateDeliveryCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand",
)

// RateDeliveryCommand stores the customer's grade and comment for a delivered order.
type RateDeliveryCommand struct {
	orderID kernel.UUID
	rating  delivery.Rating
	guard   guard.ConstructorGuard
}

// NewRateDeliveryCommand rejects grades outside of 1..5 with errs.ErrValueIsOutOfRange.
func NewRateDeliveryCommand(orderID kernel.UUID, grade int, comment string) (RateDeliveryCommand, error) {
	rating, ratingErr := delivery.NewRating(grade, comment)

	if err := errors.Join(wrapInvalid("order id", orderID.Validate()), ratingErr); err != nil {
		return RateDeliveryCommand{}, err
	}

	return RateDeliveryCommand{orderID: orderID, rating: rating, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrRateDeliveryCommandIsNotConstructed otherwise.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// OrderID returns the rated order.
func (c RateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the validated rating.
func (c RateDeliveryCommand) Rating() delivery.Rating {
	return c.rating
}
