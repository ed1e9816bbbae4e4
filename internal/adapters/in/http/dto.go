package http

import (
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"

	"github.com/samber/lo"
)

// Location is a WGS84 point on the wire.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func locationFrom(l kernel.Location) Location {
	return Location{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

// NewDelivery is the body of POST /deliveries.
type NewDelivery struct {
	OrderID     string   `json:"orderId"`
	VendorID    string   `json:"vendorId"`
	CustomerID  string   `json:"customerId"`
	Destination Location `json:"destination"`
}

// StatusChange is the body of a status update. Status is matched case-insensitively.
type StatusChange struct {
	ActorID string `json:"actorId"`
	Status  string `json:"status"`
}

// CourierRef names a courier in assignment requests.
type CourierRef struct {
	CourierID string `json:"courierId"`
}

// TimeUpdate carries an RFC 3339 timestamp.
type TimeUpdate struct {
	Time time.Time `json:"time"`
}

// Issue is a reported delivery problem.
type Issue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Rating is both the request and the response body of the rating endpoints.
type Rating struct {
	Grade   int    `json:"grade"`
	Comment string `json:"comment"`
}

// ZoneUpdate is the body of a delivery zone change.
type ZoneUpdate struct {
	Radius float64 `json:"radius"`
}

// Times omits stages that were not recorded yet.
type Times struct {
	Ready     *time.Time `json:"ready,omitempty"`
	PickUp    *time.Time `json:"pickup,omitempty"`
	Delivered *time.Time `json:"delivered,omitempty"`
}

// Delivery is the full view of a delivery and its order. Status uses the lower-case
// wire names, for example "in_transit".
type Delivery struct {
	ID          string   `json:"id"`
	OrderID     string   `json:"orderId"`
	VendorID    string   `json:"vendorId"`
	CustomerID  string   `json:"customerId"`
	Destination Location `json:"destination"`
	Status      string   `json:"status"`
	CourierID   *string  `json:"courierId,omitempty"`
	Times       Times    `json:"times"`
	Issue       *Issue   `json:"issue,omitempty"`
}

func deliveryFrom(d *delivery.Delivery) Delivery {
	o := d.Order()
	resp := Delivery{
		ID:          d.ID().String(),
		OrderID:     o.ID().String(),
		VendorID:    o.VendorID().String(),
		CustomerID:  o.CustomerID().String(),
		Destination: locationFrom(o.Destination()),
		Status:      o.Status().WireName(),
		Times: Times{
			Ready:     d.Time().ReadyTime(),
			PickUp:    d.Time().PickUpTime(),
			Delivered: d.Time().DeliveredTime(),
		},
	}
	if id := d.CourierID(); id != nil {
		resp.CourierID = lo.ToPtr(id.String())
	}
	if issue := d.Issue(); issue != nil {
		resp.Issue = &Issue{Type: issue.Type(), Description: issue.Description()}
	}
	return resp
}

// OrderStatus answers status lookups and changes.
type OrderStatus struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func orderStatusFrom(o *order.Order) OrderStatus {
	return OrderStatus{OrderID: o.ID().String(), Status: o.Status().WireName()}
}

// Vendor lists couriers in the order they joined the vendor's set.
type Vendor struct {
	ID           string   `json:"id"`
	Address      Location `json:"address"`
	DeliveryZone float64  `json:"deliveryZone"`
	Couriers     []string `json:"couriers"`
}

func vendorFrom(v *vendor.Vendor) Vendor {
	return Vendor{
		ID:           v.ID().String(),
		Address:      locationFrom(v.Address()),
		DeliveryZone: v.DeliveryZone(),
		Couriers:     uuidStrings(v.Couriers()),
	}
}

// InTransitDelivery is one row of the in-transit listing.
type InTransitDelivery struct {
	OrderID       string     `json:"orderId"`
	VendorAddress Location   `json:"vendorAddress"`
	Destination   Location   `json:"destination"`
	PickUpTime    *time.Time `json:"pickUpTime,omitempty"`
}

func inTransitFrom(rows []queries.GetInTransitDeliveriesQueryResponse) []InTransitDelivery {
	return lo.Map(rows, func(r queries.GetInTransitDeliveriesQueryResponse, _ int) InTransitDelivery {
		return InTransitDelivery{
			OrderID:       r.OrderID.String(),
			VendorAddress: locationFrom(r.VendorAddress),
			Destination:   locationFrom(r.Destination),
			PickUpTime:    r.PickUpTime,
		}
	})
}

func uuidStrings(ids []kernel.UUID) []string {
	return lo.Map(ids, func(id kernel.UUID, _ int) string { return id.String() })
}
