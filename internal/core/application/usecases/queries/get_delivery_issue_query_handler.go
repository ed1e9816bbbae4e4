package queries

import (
	"context"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/pkg/errs"
)

// GetDeliveryIssueQueryHandler reads the issue reported on the delivery of an order.
type GetDeliveryIssueQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetDeliveryIssueQueryHandler creates a handler for issue lookups.
// Requires a DeliveryReader; no transaction is opened.
func NewGetDeliveryIssueQueryHandler(deliveries DeliveryReader) GetDeliveryIssueQueryHandler {
	return GetDeliveryIssueQueryHandler{deliveries: deliveries}
}

// Handle returns the stored issue.
//
// Returns:
//	- errs.ErrObjectNotFound wrapping delivery.ErrDeliveryNotFound for unknown orders
//	- a bare errs.ErrObjectNotFound while no issue was reported
func (h GetDeliveryIssueQueryHandler) Handle(ctx context.Context, query GetDeliveryIssueQuery) (delivery.Issue, error) {
	if err := query.Validate(); err != nil {
		return delivery.Issue{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return delivery.Issue{}, notFound(err, "orderID", query.OrderID(), delivery.ErrDeliveryNotFound)
	}

	issue := d.Issue()
	if issue == nil {
		return delivery.Issue{}, errs.NewObjectNotFoundError("issue", query.OrderID().String())
	}
	return *issue, nil
}
