// Package commands contains the write operations of the tracking service. Every command is
// built through a constructor that validates its arguments, and every handler runs inside a
// unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the repositories it touches.
type (
	// TxManager brackets the repository calls of one handler.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory exposes the order repository of an open unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VendorRepoFactory exposes the vendor repository of an open unit of work.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// DeliveryRepoFactory exposes the delivery repository of an open unit of work.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderUoW serves status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory hands out a fresh OrderUoW per call.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// VendorUoW serves courier-set and delivery-zone changes.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory hands out a fresh VendorUoW per call.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// DeliveryUoW serves time records and issues.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory hands out a fresh DeliveryUoW per call.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW spans every repository, for operations that create deliveries or check them
	// against their vendor.
	UoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
		DeliveryRepoFactory
	}

	// UoWFactory hands out a fresh UoW per call. Units of work are never shared
	// between requests.
	UoWFactory interface {
		Create() UoW
	}
)
