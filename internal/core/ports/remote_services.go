package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// UserTypeCourier is the classification the Users service reports for couriers.
const UserTypeCourier = "courier"

// UsersService is the external identity and location source.
type UsersService interface {
	// GetVendorLocation returns nil without error when the service knows no location.
	GetVendorLocation(ctx context.Context, vendorID kernel.UUID) (*kernel.Location, error)
	// GetUserType returns ok=false when the user is unknown.
	GetUserType(ctx context.Context, userID kernel.UUID) (userType string, ok bool, err error)
}

// OrdersService mirrors status changes to the remote Orders service.
type OrdersService interface {
	// PutOrderStatus reports whether the remote side acknowledged the write.
	PutOrderStatus(ctx context.Context, orderID kernel.UUID, actorID kernel.UUID, status string) (bool, error)
}
