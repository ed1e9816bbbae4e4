package delivery

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned by Validate for nil or zero-value deliveries.
	ErrDeliveryIsNotConstructed = errors.New("delivery must be created via NewDelivery or RestoreDelivery")
	// ErrDeliveryNotFound identifies the missing entity in not-found errors about deliveries.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDeliveryIsClosed is returned for writes that a rejected or delivered order refuses.
	ErrDeliveryIsClosed = errors.New("delivery is closed")
)

// Delivery is the aggregate root tracking one order from creation to completion.
type Delivery struct {
	id        kernel.UUID
	order     *order.Order
	courierID *kernel.UUID
	time      TimeRecord
	issue     *Issue
	rating    *Rating
	guard     guard.ConstructorGuard
}

// NewDelivery pairs a fresh delivery with its order.
func NewDelivery(id kernel.UUID, o *order.Order) (*Delivery, error) {
	return RestoreDelivery(id, o, nil, TimeRecord{}, nil, nil)
}

// RestoreDelivery rebuilds a delivery from stored state. courierID, issue and rating are
// optional; the time record is taken as is.
func RestoreDelivery(
	id kernel.UUID,
	o *order.Order,
	courierID *kernel.UUID,
	timeRecord TimeRecord,
	issue *Issue,
	rating *Rating,
) (*Delivery, error) {
	d := &Delivery{
		time:  timeRecord,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrder(o),
		d.setCourier(courierID),
		d.setIssue(issue),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the delivery was created through NewDelivery or RestoreDelivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery id. Callers address deliveries by order id; this one is
// only exposed in responses.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Order returns the owned order. Status changes go through ChangeStatus so the
// delivery stays the single entry point.
func (d *Delivery) Order() *order.Order {
	return d.order
}

// CourierID returns nil while no courier is bound.
func (d *Delivery) CourierID() *kernel.UUID {
	if d.courierID == nil {
		return nil
	}
	id := *d.courierID
	return &id
}

// Time returns a copy of the lifecycle time record.
func (d *Delivery) Time() TimeRecord {
	return d.time
}

// Issue returns nil when nothing was reported.
func (d *Delivery) Issue() *Issue {
	if d.issue == nil {
		return nil
	}
	issue := *d.issue
	return &issue
}

// Rating returns nil while the order is unrated.
func (d *Delivery) Rating() *Rating {
	if d.rating == nil {
		return nil
	}
	r := *d.rating
	return &r
}

// ChangeStatus forwards to the owned order.
func (d *Delivery) ChangeStatus(next order.Status) error {
	return d.order.ChangeStatus(next)
}

// RecordTime records a lifecycle stage.
//
// Rejected deliveries refuse every stage. Delivered ones only accept the delivered stage,
// which may be recorded after the status change; ready and pickup are frozen.
//
// Returns:
//   - ErrDeliveryIsClosed for writes a closed order refuses
//   - ErrLifecycleOutOfOrder (wrapped) when t breaks ready <= pickup <= delivered
func (d *Delivery) RecordTime(stage Stage, t time.Time) error {
	switch d.order.Status() {
	case order.Rejected:
		return ErrDeliveryIsClosed
	case order.Delivered:
		if stage != StageDelivered {
			return ErrDeliveryIsClosed
		}
	}
	return d.time.Set(stage, t)
}

// AssignCourier binds a courier. Closed orders refuse new couriers.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if d.order.IsClosed() {
		return ErrDeliveryIsClosed
	}
	return d.setCourier(&courierID)
}

// ReportIssue replaces any earlier issue.
func (d *Delivery) ReportIssue(issue Issue) error {
	return d.setIssue(&issue)
}

// Rate stores the customer's rating, replacing an earlier one. Only delivered orders can
// be rated.
func (d *Delivery) Rate(rating Rating) error {
	if d.order.Status() != order.Delivered {
		return ErrDeliveryIsNotDelivered
	}
	return d.setRating(&rating)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("delivery id: %w", err)
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	d.order = o
	return nil
}

func (d *Delivery) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		d.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return fmt.Errorf("courier id: %w", err)
	}
	id := *courierID
	d.courierID = &id
	return nil
}

func (d *Delivery) setIssue(issue *Issue) error {
	if issue == nil {
		d.issue = nil
		return nil
	}
	if err := issue.Validate(); err != nil {
		return err
	}
	i := *issue
	d.issue = &i
	return nil
}

func (d *Delivery) setRating(rating *Rating) error {
	if rating == nil {
		d.rating = nil
		return nil
	}
	if err := rating.Validate(); err != nil {
		return err
	}
	r := *rating
	d.rating = &r
	return nil
}
