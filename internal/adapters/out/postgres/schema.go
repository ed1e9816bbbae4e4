package postgres

import (
	"tracking/internal/adapters/out/postgres/deliveryrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables of the service. Orders come before deliveries
// because deliveries reference them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&vendorrepo.VendorDTO{},
		&vendorrepo.VendorCourierDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
