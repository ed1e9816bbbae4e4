// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Aggregate-backed queries read through the repositories outside of a transaction;
// list queries return read models built with raw SQL.
package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"
)

// DeliveryReader loads the delivery owned by an order.
type DeliveryReader interface {
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}

// VendorReader loads a vendor by id.
type VendorReader interface {
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
}

// notFound attaches the entity sentinel to a repository not-found error.
func notFound(err error, paramName string, id kernel.UUID, entity error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(paramName, id.String(), entity)
	}
	return err
}

func wrapInvalid(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(name, err)
}
