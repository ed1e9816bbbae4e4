package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/clock"
)

// GetEtaQueryHandler estimates when an order arrives from its recorded lifecycle times.
type GetEtaQueryHandler struct {
	deliveries DeliveryReader
	calculator services.EtaCalculator
	clock      clock.Clock
}

// NewGetEtaQueryHandler creates the handler. clk supplies "now" for orders that were
// not yet picked up.
func NewGetEtaQueryHandler(
	deliveries DeliveryReader,
	calculator services.EtaCalculator,
	clk clock.Clock,
) GetEtaQueryHandler {
	return GetEtaQueryHandler{deliveries: deliveries, calculator: calculator, clock: clk}
}

// Handle never fails for a known order: a delivery without times is estimated from now.
func (h GetEtaQueryHandler) Handle(ctx context.Context, query GetEtaQuery) (time.Time, error) {
	if err := query.Validate(); err != nil {
		return time.Time{}, err
	}

	d, err := h.deliveries.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return time.Time{}, notFound(err, "orderID", query.OrderID(), order.ErrOrderNotFound)
	}

	return h.calculator.Estimate(d.Time(), h.clock.Now()), nil
}
