package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories returned by it join the transaction
// started by Begin; Rollback after Commit is a no-op.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	d, err := uow.DeliveryRepository().GetByOrderID(ctx, orderID)
//	...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin opens the transaction. Calling it again while one is open is a no-op.
	Begin(ctx context.Context) error
	// Commit makes every write since Begin durable.
	Commit(ctx context.Context) error
	// Rollback discards the writes since Begin.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	VendorRepository() VendorRepository
	DeliveryRepository() DeliveryRepository
}
