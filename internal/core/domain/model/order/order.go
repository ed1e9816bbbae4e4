package order

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for zero or nil orders.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")
	// ErrOrderNotFound identifies the missing entity in not-found errors about orders.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists is returned when a delivery is created for an order id already in use.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// Order is the status-bearing half of a delivery. It is owned by the Delivery aggregate and
// only changes status through ValidateTransition.
type Order struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	customerID  kernel.UUID
	destination kernel.Location
	status      Status
	guard       guard.ConstructorGuard
}

// NewOrder creates an order in PENDING.
func NewOrder(id kernel.UUID, vendorID kernel.UUID, customerID kernel.UUID, destination kernel.Location) (*Order, error) {
	return build(id, vendorID, customerID, destination, Pending)
}

// RestoreOrder rebuilds an order read back from storage, with whatever valid status it had.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	destination kernel.Location,
	status Status,
) (*Order, error) {
	return build(id, vendorID, customerID, destination, status)
}

func build(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	destination kernel.Location,
	status Status,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setCustomerID(customerID),
		o.setDestination(destination),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
// Returns ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order id, which also keys the delivery.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the vendor that prepares the order. Live location and zone
// checks start from this vendor's address.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// CustomerID returns the customer the order is delivered to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Destination returns where the order is delivered.
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// IsClosed reports whether the order reached REJECTED or DELIVERED.
func (o *Order) IsClosed() bool {
	return o.status.IsTerminal()
}

// ChangeStatus moves the order to next if the transition table allows it.
func (o *Order) ChangeStatus(next Status) error {
	if err := ValidateTransition(o.status, next); err != nil {
		return err
	}
	o.status = next
	return nil
}

// Reject is used at creation time for destinations outside of the vendor's delivery zone.
func (o *Order) Reject() error {
	return o.ChangeStatus(Rejected)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("vendor id: %w", err)
	}
	o.vendorID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customer id: %w", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
