package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrAssignCourierToDeliveryCommandIsNotConstructed is returned by Validate on a zero command.
var ErrAssignCourierToDeliveryCommandIsNotConstructed = errors.New(
	"AssignCourierToDeliveryCommand must be created via NewAssignCourierToDeliveryCommand",
)

// AssignCourierToDeliveryCommand names the courier who will carry an order.
type AssignCourierToDeliveryCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewAssignCourierToDeliveryCommand validates both ids.
//
// Returns:
//	- the command on success
//	- errs.ErrValueIsInvalid for a nil or malformed id
func NewAssignCourierToDeliveryCommand(orderID kernel.UUID, courierID kernel.UUID) (AssignCourierToDeliveryCommand, error) {
	if err := errors.Join(
		wrapInvalid("order id", orderID.Validate()),
		wrapInvalid("courier id", courierID.Validate()),
	); err != nil {
		return AssignCourierToDeliveryCommand{}, err
	}

	return AssignCourierToDeliveryCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrAssignCourierToDeliveryCommandIsNotConstructed otherwise.
func (c AssignCourierToDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierToDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignCourierToDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier to bind.
func (c AssignCourierToDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
