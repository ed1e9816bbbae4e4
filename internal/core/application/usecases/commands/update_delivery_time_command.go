package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrUpdateDeliveryTimeCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrUpdateDeliveryTimeCommandIsNotConstructed = errors.New(
	"UpdateDeliveryTimeCommand must be created via NewUpdateDeliveryTimeCommand",
)

// UpdateDeliveryTimeCommand records when an order became ready, was picked up or was delivered.
type UpdateDeliveryTimeCommand struct {
	orderID kernel.UUID
	stage   delivery.Stage
	at      time.Time
	guard   guard.ConstructorGuard
}

// NewUpdateDeliveryTimeCommand requires a known stage and a non-zero time.
func NewUpdateDeliveryTimeCommand(orderID kernel.UUID, stage delivery.Stage, at time.Time) (UpdateDeliveryTimeCommand, error) {
	var timeErr error
	if at.IsZero() {
		timeErr = errs.NewValueIsRequiredError(stage.String() + " time")
	}

	if err := errors.Join(wrapInvalid("order id", orderID.Validate()), timeErr); err != nil {
		return UpdateDeliveryTimeCommand{}, err
	}

	return UpdateDeliveryTimeCommand{orderID: orderID, stage: stage, at: at, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrUpdateDeliveryTimeCommandIsNotConstructed otherwise.
func (c UpdateDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryTimeCommandIsNotConstructed)
}

// OrderID returns the order being timed.
func (c UpdateDeliveryTimeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns which time is recorded.
func (c UpdateDeliveryTimeCommand) Stage() delivery.Stage {
	return c.stage
}

// At returns the recorded instant.
func (c UpdateDeliveryTimeCommand) At() time.Time {
	return c.at
}
