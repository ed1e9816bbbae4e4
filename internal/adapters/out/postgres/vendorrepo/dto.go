// Package vendorrepo maps the vendor aggregate to the "vendors" table and its courier set to
// the "vendor_couriers" child table.
package vendorrepo

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
type VendorDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Address      LocationDTO        `gorm:"embedded;embeddedPrefix:address_"`
	DeliveryZone float64            `gorm:"type:double precision;not null"`
	Couriers     []VendorCourierDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// LocationDTO stores the vendor address.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// VendorCourierDTO is one member of a vendor's courier set. Position keeps insertion order.
type VendorCourierDTO struct {
	VendorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;not null"`
}

func (VendorCourierDTO) TableName() string {
	return "vendor_couriers"
}

func fromDomain(v *vendor.Vendor) VendorDTO {
	vendorID := v.ID().Value()

	return VendorDTO{
		ID: vendorID,
		Address: LocationDTO{
			Latitude:  v.Address().Latitude(),
			Longitude: v.Address().Longitude(),
		},
		DeliveryZone: v.DeliveryZone(),
		Couriers: lo.Map(v.Couriers(), func(courierID kernel.UUID, i int) VendorCourierDTO {
			return VendorCourierDTO{VendorID: vendorID, CourierID: courierID.Value(), Position: i}
		}),
	}
}

// toDomain expects dto.Couriers sorted by position.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	address, err := kernel.NewLocation(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}

	couriers := lo.Map(dto.Couriers, func(c VendorCourierDTO, _ int) kernel.UUID {
		return kernel.UUIDFrom(c.CourierID)
	})

	return vendor.RestoreVendor(kernel.UUIDFrom(dto.ID), address, dto.DeliveryZone, couriers)
}
