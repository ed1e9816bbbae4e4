package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInTransitDeliveriesQueryHandler reads the in-transit read model straight from the
// orders, vendors and deliveries tables.
type GetInTransitDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetInTransitDeliveriesQueryHandler creates the handler. Reads bypass the unit of work.
func NewGetInTransitDeliveriesQueryHandler(db *gorm.DB) GetInTransitDeliveriesQueryHandler {
	return GetInTransitDeliveriesQueryHandler{db: db}
}

// Handle returns the rows ordered by pickup time, deliveries without a pickup first.
func (h GetInTransitDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetInTransitDeliveriesQuery,
) ([]GetInTransitDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetInTransitDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			v.address_latitude,
			v.address_longitude,
			o.destination_latitude,
			o.destination_longitude,
			d.pick_up_time
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		JOIN vendors v ON v.id = o.vendor_id
		WHERE o.status = ?
		ORDER BY d.pick_up_time NULLS FIRST, o.id
	`, int(order.OnTransit)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                   uuid.UUID
			vendorLat, vendorLon float64
			destLat, destLon     float64
			pickUp               sql.NullTime
		)
		if err = rows.Scan(&id, &vendorLat, &vendorLon, &destLat, &destLon, &pickUp); err != nil {
			return nil, err
		}

		vendorAddress, locErr := kernel.NewLocation(vendorLat, vendorLon)
		if locErr != nil {
			return nil, locErr
		}
		destination, locErr := kernel.NewLocation(destLat, destLon)
		if locErr != nil {
			return nil, locErr
		}

		row := GetInTransitDeliveriesQueryResponse{
			OrderID:       kernel.UUIDFrom(id),
			VendorAddress: vendorAddress,
			Destination:   destination,
		}
		if pickUp.Valid {
			t := pickUp.Time.UTC()
			row.PickUpTime = &t
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
