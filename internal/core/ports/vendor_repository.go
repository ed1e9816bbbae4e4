package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
)

// VendorRepository persists vendors together with their ordered courier set.
// The courier order is the order in which couriers were hired and is preserved on reload.
type VendorRepository interface {
	// Get retrieves a vendor with its couriers.
	// Returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// Exists reports whether the vendor is stored without loading its couriers.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Add inserts the vendor and its courier set.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update rewrites the vendor row and its courier set.
	Update(ctx context.Context, aggregate *vendor.Vendor) error
}
