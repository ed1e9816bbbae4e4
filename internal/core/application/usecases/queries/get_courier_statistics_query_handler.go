package queries

import (
	"context"
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierStatisticsQueryHandler computes courier analytics with raw SQL over the
// deliveries, orders and vendor_couriers tables.
type GetCourierStatisticsQueryHandler struct {
	db              *gorm.DB
	transitDuration time.Duration
}

// NewGetCourierStatisticsQueryHandler measures efficiency against transitDuration, the same
// budget the ETA and live-location estimates assume.
func NewGetCourierStatisticsQueryHandler(db *gorm.DB, transitDuration time.Duration) GetCourierStatisticsQueryHandler {
	return GetCourierStatisticsQueryHandler{db: db, transitDuration: transitDuration}
}

// Handle returns a not-found error with cause vendor.ErrCourierNotFound for a courier that
// no vendor employs and no delivery references.
func (h GetCourierStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatisticsQuery,
) (GetCourierStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	courierID := query.CourierID().Value()

	var known bool
	if err := db.Raw(`
		SELECT EXISTS (SELECT 1 FROM vendor_couriers WHERE courier_id = ?)
		    OR EXISTS (SELECT 1 FROM deliveries WHERE courier_id = ?)
	`, courierID, courierID).Row().Scan(&known); err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}
	if !known {
		return GetCourierStatisticsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"courierID", query.CourierID().String(), vendor.ErrCourierNotFound)
	}

	delivered := int(order.Delivered)
	var successful, dated, days, timed, onTime int64
	if err := db.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE o.status = ?),
			COUNT(*) FILTER (WHERE o.status = ? AND d.delivered_time IS NOT NULL),
			COUNT(DISTINCT (d.delivered_time AT TIME ZONE 'UTC')::date) FILTER (WHERE o.status = ?),
			COUNT(*) FILTER (WHERE o.status = ? AND d.pick_up_time IS NOT NULL AND d.delivered_time IS NOT NULL),
			COUNT(*) FILTER (
				WHERE o.status = ?
				  AND d.pick_up_time IS NOT NULL
				  AND d.delivered_time IS NOT NULL
				  AND EXTRACT(EPOCH FROM (d.delivered_time - d.pick_up_time))::float8 <= ?
			)
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.courier_id = ?
	`, delivered, delivered, delivered, delivered, delivered, h.transitDuration.Seconds(), courierID,
	).Row().Scan(&successful, &dated, &days, &timed, &onTime); err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}

	issues, err := h.issues(db, query)
	if err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}

	result := GetCourierStatisticsQueryResponse{
		SuccessfulDeliveries: int(successful),
		Issues:               issues,
	}
	if days > 0 {
		result.DeliveriesPerDay = int(dated / days)
	}
	if timed > 0 {
		result.Efficiency = int(onTime * 100 / timed)
	}
	return result, nil
}

func (h GetCourierStatisticsQueryHandler) issues(db *gorm.DB, query GetCourierStatisticsQuery) ([]string, error) {
	result := make([]string, 0)

	rows, err := db.Raw(`
		SELECT d.issue_type, d.issue_description
		FROM deliveries d
		WHERE d.courier_id = ? AND d.issue_type IS NOT NULL
		ORDER BY d.order_id
	`, query.CourierID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind        string
			description sql.NullString
		)
		if err = rows.Scan(&kind, &description); err != nil {
			return nil, err
		}
		if description.Valid && description.String != "" {
			kind += ": " + description.String
		}
		result = append(result, kind)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
