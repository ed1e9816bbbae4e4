package commands

import (
	"context"

	"tracking/internal/core/domain/model/delivery"
)

// ReportIssueCommandHandler replaces the issue of the delivery of an order.
type ReportIssueCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReportIssueCommandHandler creates the handler from a DeliveryUoWFactory.
func NewReportIssueCommandHandler(uowFactory DeliveryUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the order has no delivery.
func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return notFound(err, "orderID", cmd.OrderID(), delivery.ErrDeliveryNotFound)
	}

	if err = d.ReportIssue(cmd.Issue()); err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
