package deliveryrepo

import (
	"context"
	"errors"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM. The owned order is
// written through orderrepo in the same transaction.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a repository over db. A nil tracker disables
// aggregate tracking.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and then the delivery.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orderrepo.NewGormOrderRepository(tx, r.tracker).Add(ctx, aggregate.Order()); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&dto).Error
	})
	if err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update writes the order status and the delivery columns. Nil fields clear their columns.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orderrepo.NewGormOrderRepository(tx, r.tracker).Update(ctx, aggregate.Order()); err != nil {
			return err
		}

		result := tx.Model(&DeliveryDTO{}).
			Where("id = ?", dto.ID).
			Updates(map[string]any{
				"courier_id":        dto.CourierID,
				"ready_time":        dto.Time.ReadyTime,
				"pick_up_time":      dto.Time.PickUpTime,
				"delivered_time":    dto.Time.DeliveredTime,
				"issue_type":        dto.Issue.Type,
				"issue_description": dto.Issue.Description,
				"rating_grade":      dto.Rating.Grade,
				"rating_comment":    dto.Rating.Comment,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("deliveryID", aggregate.ID().String())
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// GetByOrderID loads the delivery owned by the order, order included.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Preload("Order").First(&dto, "order_id = ?", orderID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) track(aggregate *delivery.Delivery) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
