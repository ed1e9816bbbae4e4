package vendorrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements ports.VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVendorRepository creates a repository over db. A nil tracker disables
// aggregate tracking, which is how read-only readers are built.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the vendor together with its courier set.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update rewrites the vendor row and replaces its courier set.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&VendorDTO{}).
			Where("id = ?", dto.ID).
			Updates(map[string]any{
				"address_latitude":  dto.Address.Latitude,
				"address_longitude": dto.Address.Longitude,
				"delivery_zone":     dto.DeliveryZone,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("vendorID", aggregate.ID().String())
		}

		if err := tx.Where("vendor_id = ?", dto.ID).Delete(&VendorCourierDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Couriers) == 0 {
			return nil
		}
		return tx.Create(&dto.Couriers).Error
	})
	if err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a vendor with its couriers in insertion order.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	err := r.db.WithContext(ctx).
		Preload("Couriers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendorID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a vendor row with id is stored.
//
// Returns:
//	- true, nil for a stored vendor
//	- false, nil when no row matches
//	- errs.ErrValueIsInvalid for a malformed id
func (r *GormVendorRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&VendorDTO{}).Where("id = ?", id.Value()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormVendorRepository) track(aggregate *vendor.Vendor) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
