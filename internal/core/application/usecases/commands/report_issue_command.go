package commands

import (
	"errors"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

// ErrReportIssueCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand",
)

// ReportIssueCommand attaches an issue to the delivery of an order.
type ReportIssueCommand struct {
	orderID kernel.UUID
	issue   delivery.Issue
	guard   guard.ConstructorGuard
}

// NewReportIssueCommand requires a non-blank issue type. The description may be empty.
func NewReportIssueCommand(orderID kernel.UUID, issueType string, description string) (ReportIssueCommand, error) {
	issue, issueErr := delivery.NewIssue(issueType, description)

	if err := errors.Join(wrapInvalid("order id", orderID.Validate()), issueErr); err != nil {
		return ReportIssueCommand{}, err
	}

	return ReportIssueCommand{orderID: orderID, issue: issue, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
// Returns ErrReportIssueCommandIsNotConstructed otherwise.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// OrderID returns the order the issue belongs to.
func (c ReportIssueCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Issue returns the issue to store.
func (c ReportIssueCommand) Issue() delivery.Issue {
	return c.issue
}
