package commands

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrCreateDeliveryCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand",
)

// CreateDeliveryCommand registers an order placed at a vendor and starts tracking it.
type CreateDeliveryCommand struct { //nolint:recvcheck // setDestination takes a pointer
	orderID     kernel.UUID
	vendorID    kernel.UUID
	customerID  kernel.UUID
	destination kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates the ids and the destination.
func NewCreateDeliveryCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	destination kernel.Location,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setID(&cmd.vendorID, "vendor id", vendorID),
		setID(&cmd.customerID, "customer id", customerID),
		cmd.setDestination(destination),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed otherwise.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the id of the new order.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor preparing the order.
func (c CreateDeliveryCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// CustomerID returns the ordering customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Destination returns where the order is delivered.
func (c CreateDeliveryCommand) Destination() kernel.Location {
	return c.destination
}

func setID(dst *kernel.UUID, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = id
	return nil
}

func (c *CreateDeliveryCommand) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
