package commands

import (
	"context"
	"strings"

	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// AssignCourierToVendorCommandHandler adds a courier to a vendor's set after the Users
// service confirms the user is a courier. The vendor is written even when the courier was
// already a member.
type AssignCourierToVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	users      ports.UsersService
}

// NewAssignCourierToVendorCommandHandler creates the handler. The users service
// is asked for the user type before any write.
func NewAssignCourierToVendorCommandHandler(
	uowFactory VendorUoWFactory,
	users ports.UsersService,
) AssignCourierToVendorCommandHandler {
	return AssignCourierToVendorCommandHandler{uowFactory: uowFactory, users: users}
}

// Handle returns errs.ErrObjectNotFound for an unknown vendor and
// errs.ErrValueIsInvalid when the user is not a courier.
func (h AssignCourierToVendorCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCourierToVendorCommand,
) (*vendor.Vendor, error) {
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

	repo := uow.VendorRepository()
	v, err := repo.Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, notFound(err, "vendorID", cmd.VendorID(), vendor.ErrVendorNotFound)
	}

	userType, known, err := h.users.GetUserType(ctx, cmd.CourierID())
	if err != nil {
		return nil, errs.NewMicroserviceCommunicationErrorWithCause(usersServiceName, "GetUserType", err)
	}
	if !known || !strings.EqualFold(strings.TrimSpace(userType), ports.UserTypeCourier) {
		return nil, errs.NewObjectNotFoundErrorWithCause("courierID", cmd.CourierID().String(), vendor.ErrCourierNotFound)
	}

	if _, err = v.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
