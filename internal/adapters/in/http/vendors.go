package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// FindOrCreateVendor handles PUT /api/v1/vendors/{vendorId}. Unknown vendors are provisioned
// from the Users service.
func (s *Server) FindOrCreateVendor(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewFindOrCreateVendorCommand(vendorID)
	if err != nil {
		return s.fail(c, err)
	}
	v, err := s.h.FindOrCreateVendor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, vendorFrom(v))
}

// GetAssignedCouriers handles GET /api/v1/vendors/{vendorId}/couriers.
func (s *Server) GetAssignedCouriers(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetAssignedCouriersQuery(vendorID)
	if err != nil {
		return s.fail(c, err)
	}
	couriers, err := s.h.GetAssignedCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"couriers": uuidStrings(couriers)})
}

// AssignCourierToVendor handles POST /api/v1/vendors/{vendorId}/couriers.
func (s *Server) AssignCourierToVendor(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	var req CourierRef
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignCourierToVendorCommand(vendorID, courierID)
	if err != nil {
		return s.fail(c, err)
	}
	v, err := s.h.AssignCourierToVendor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, vendorFrom(v))
}

// GetDeliveryZone handles GET /api/v1/vendors/{vendorId}/zone.
func (s *Server) GetDeliveryZone(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetDeliveryZoneQuery(vendorID)
	if err != nil {
		return s.fail(c, err)
	}
	radius, err := s.h.GetDeliveryZone.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ZoneUpdate{Radius: radius})
}

// UpdateDeliveryZone handles PUT /api/v1/vendors/{vendorId}/zone.
func (s *Server) UpdateDeliveryZone(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	var req ZoneUpdate
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryZoneCommand(vendorID, req.Radius)
	if err != nil {
		return s.fail(c, err)
	}
	v, err := s.h.UpdateDeliveryZone.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, vendorFrom(v))
}

// GetVendorLocation handles GET /api/v1/vendors/{vendorId}/location.
func (s *Server) GetVendorLocation(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetVendorLocationQuery(vendorID)
	if err != nil {
		return s.fail(c, err)
	}
	loc, err := s.h.GetVendorLocation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, locationFrom(loc))
}
