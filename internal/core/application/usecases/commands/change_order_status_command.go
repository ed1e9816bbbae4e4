package commands

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

// ErrChangeOrderStatusCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand",
)

// ChangeOrderStatusCommand carries a status reported by a caller. The free-form status
// string is parsed here, before any transition is considered.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	actorID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses status case-insensitively.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, actorID, "in_transit")
//	if err != nil {
//		return err
//	}
func NewChangeOrderStatusCommand(orderID kernel.UUID, actorID kernel.UUID, status string) (ChangeOrderStatusCommand, error) {
	parsed, parseErr := order.ParseStatus(status)

	if err := errors.Join(
		wrapInvalid("order id", orderID.Validate()),
		wrapInvalid("actor id", actorID.Validate()),
		parseErr,
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		actorID: actorID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed otherwise.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the user who asked for the change.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Status returns the parsed target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func wrapInvalid(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
