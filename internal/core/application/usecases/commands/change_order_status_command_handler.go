package commands

import (
	"context"
	"errors"
	"log/slog"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

const ordersServiceName = "orders"

// ChangeOrderStatusCommandHandler validates a transition locally, mirrors it to the remote
// Orders service and only then commits it. A failed or unacknowledged remote write leaves the
// stored status untouched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	orders     ports.OrdersService
	metrics    ports.TrackingMetrics
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// Requires an OrderUoWFactory for persistence and the remote Orders service.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	orders ports.OrdersService,
	metrics ports.TrackingMetrics,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		metrics:    metrics,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle returns the order in its new status.
//
// Returns:
//	- order.InvalidTransitionError for a move the lifecycle forbids
//	- errs.ErrMicroserviceCommunication when the Orders service fails or refuses
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, notFound(err, "orderID", cmd.OrderID(), order.ErrOrderNotFound)
	}

	from := o.Status()
	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	acknowledged, err := h.orders.PutOrderStatus(ctx, cmd.OrderID(), cmd.ActorID(), cmd.Status().WireName())
	if err != nil {
		h.logger.ErrorContext(ctx, "orders service rejected status update",
			"order_id", cmd.OrderID().String(), "status", cmd.Status().String(), "error", err)
		return nil, errs.NewMicroserviceCommunicationErrorWithCause(ordersServiceName, "PutOrderStatus", err)
	}
	if !acknowledged {
		h.logger.WarnContext(ctx, "orders service did not acknowledge status update",
			"order_id", cmd.OrderID().String(), "status", cmd.Status().String())
		return nil, errs.NewMicroserviceCommunicationErrorWithCause(ordersServiceName, "PutOrderStatus",
			errors.New("status update not acknowledged"))
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", cmd.OrderID().String(), "from", from.String(), "to", o.Status().String())
	if h.metrics != nil {
		h.metrics.StatusChanged(o.Status())
	}
	return o, nil
}
