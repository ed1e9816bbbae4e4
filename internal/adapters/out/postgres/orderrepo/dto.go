// Package orderrepo maps the order aggregate to the "orders" table.
package orderrepo

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null"`
	Destination LocationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Status      int         `gorm:"type:smallint;not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO stores the delivery destination of the order.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// FromDomain converts an order aggregate to its row. It is shared with the delivery
// repository, which writes the order together with its delivery.
func FromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Value(),
		VendorID:   o.VendorID().Value(),
		CustomerID: o.CustomerID().Value(),
		Destination: LocationDTO{
			Latitude:  o.Destination().Latitude(),
			Longitude: o.Destination().Longitude(),
		},
		Status: int(o.Status()),
	}
}

// ToDomain restores the aggregate from its row.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	destination, err := kernel.NewLocation(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.UUIDFrom(dto.ID),
		kernel.UUIDFrom(dto.VendorID),
		kernel.UUIDFrom(dto.CustomerID),
		destination,
		order.Status(dto.Status),
	)
}
