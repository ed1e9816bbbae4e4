package queries

import (
	"context"
	"math"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorAverageQueryHandler measures how long the deliveries of a vendor take on
// average, from pickup to drop-off.
type GetVendorAverageQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorAverageQueryHandler creates the handler over raw SQL on db.
func NewGetVendorAverageQueryHandler(db *gorm.DB) GetVendorAverageQueryHandler {
	return GetVendorAverageQueryHandler{db: db}
}

// Handle averages DELIVERED orders with both a pickup and a delivered time, rounded to the
// second. Unknown vendors give a not-found error with cause vendor.ErrVendorNotFound.
func (h GetVendorAverageQueryHandler) Handle(
	ctx context.Context,
	query GetVendorAverageQuery,
) (GetVendorAverageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorAverageQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	vendorID := query.VendorID().Value()

	var known bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM vendors WHERE id = ?)`, vendorID).Row().Scan(&known); err != nil {
		return GetVendorAverageQueryResponse{}, err
	}
	if !known {
		return GetVendorAverageQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"vendorID", query.VendorID().String(), vendor.ErrVendorNotFound)
	}

	var (
		seconds float64
		count   int64
	)
	if err := db.Raw(`
		SELECT
			COALESCE(AVG(EXTRACT(EPOCH FROM (d.delivered_time - d.pick_up_time))), 0)::float8,
			COUNT(*)
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE o.vendor_id = ?
		  AND o.status = ?
		  AND d.pick_up_time IS NOT NULL
		  AND d.delivered_time IS NOT NULL
	`, vendorID, int(order.Delivered)).Row().Scan(&seconds, &count); err != nil {
		return GetVendorAverageQueryResponse{}, err
	}

	return GetVendorAverageQueryResponse{
		Average:    time.Duration(math.Round(seconds)) * time.Second,
		Deliveries: int(count),
	}, nil
}
