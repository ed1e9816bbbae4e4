package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

const usersServiceName = "users"

// VendorProvisioner creates vendors lazily on first reference. New vendors are placed at the
// address reported by the Users service and get the configured default delivery zone.
type VendorProvisioner struct {
	users       ports.UsersService
	defaultZone float64
	logger      *slog.Logger
}

// NewVendorProvisioner creates a provisioner placing new vendors with defaultZone.
func NewVendorProvisioner(users ports.UsersService, defaultZone float64, logger *slog.Logger) VendorProvisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return VendorProvisioner{
		users:       users,
		defaultZone: defaultZone,
		logger:      logger.With("component", "vendor_provisioner"),
	}
}

// FindOrCreate returns the stored vendor untouched, or creates and adds it through repo.
func (p VendorProvisioner) FindOrCreate(
	ctx context.Context,
	repo ports.VendorRepository,
	vendorID kernel.UUID,
) (*vendor.Vendor, error) {
	exists, err := repo.Exists(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if exists {
		v, err := repo.Get(ctx, vendorID)
		return v, notFound(err, "vendorID", vendorID, vendor.ErrVendorNotFound)
	}

	address, err := p.users.GetVendorLocation(ctx, vendorID)
	if err != nil {
		p.logger.ErrorContext(ctx, "vendor location lookup failed", "vendor_id", vendorID.String(), "error", err)
		return nil, errs.NewMicroserviceCommunicationErrorWithCause(usersServiceName, "GetVendorLocation", err)
	}
	if address == nil {
		p.logger.WarnContext(ctx, "users service has no location for vendor", "vendor_id", vendorID.String())
		return nil, errs.NewMicroserviceCommunicationErrorWithCause(usersServiceName, "GetVendorLocation",
			fmt.Errorf("no location for vendor %s", vendorID))
	}

	v, err := vendor.NewVendor(vendorID, *address, p.defaultZone)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, v); err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "vendor created", "vendor_id", vendorID.String(), "zone", p.defaultZone)
	return v, nil
}
