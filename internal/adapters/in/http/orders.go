package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	var req NewDelivery
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.fail(c, err)
	}
	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return s.fail(c, err)
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.fail(c, err)
	}
	destination, err := kernel.NewLocation(req.Destination.Latitude, req.Destination.Longitude)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, vendorID, customerID, destination)
	if err != nil {
		return s.fail(c, err)
	}
	d, err := s.h.CreateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, deliveryFrom(d))
}

// GetInTransitDeliveries handles GET /api/v1/deliveries/in-transit.
func (s *Server) GetInTransitDeliveries(c echo.Context) error {
	rows, err := s.h.GetInTransitDeliveries.Handle(c.Request().Context(), queries.NewGetInTransitDeliveriesQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, inTransitFrom(rows))
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req StatusChange
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID, req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderStatusFrom(o))
}

// GetOrderStatus handles GET /api/v1/orders/{orderId}/status.
func (s *Server) GetOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	status, err := s.h.GetOrderStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, OrderStatus{OrderID: orderID.String(), Status: status.WireName()})
}

// GetDeliveryID handles GET /api/v1/orders/{orderId}/delivery.
func (s *Server) GetDeliveryID(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetDeliveryIDQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.h.GetDeliveryID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"deliveryId": id.String()})
}

// GetCourierOfOrder handles GET /api/v1/orders/{orderId}/courier.
func (s *Server) GetCourierOfOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetCourierOfOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.h.GetCourierOfOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, CourierRef{CourierID: id.String()})
}

// AssignCourierToDelivery handles PUT /api/v1/orders/{orderId}/courier.
func (s *Server) AssignCourierToDelivery(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
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

	cmd, err := commands.NewAssignCourierToDeliveryCommand(orderID, courierID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.AssignCourierToDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetDeliveryTime handles GET /api/v1/orders/{orderId}/times/{stage}.
func (s *Server) GetDeliveryTime(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	stage, err := delivery.ParseStage(c.Param("stage"))
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetDeliveryTimeQuery(orderID, stage)
	if err != nil {
		return s.fail(c, err)
	}
	at, err := s.h.GetDeliveryTime.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, TimeUpdate{Time: at})
}

// UpdateDeliveryTime handles PUT /api/v1/orders/{orderId}/times/{stage}.
func (s *Server) UpdateDeliveryTime(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	stage, err := delivery.ParseStage(c.Param("stage"))
	if err != nil {
		return s.fail(c, err)
	}
	var req TimeUpdate
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryTimeCommand(orderID, stage, req.Time)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.UpdateDeliveryTime.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetEta handles GET /api/v1/orders/{orderId}/eta.
func (s *Server) GetEta(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetEtaQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	eta, err := s.h.GetEta.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"eta": eta})
}

// GetLiveLocation handles GET /api/v1/orders/{orderId}/location.
func (s *Server) GetLiveLocation(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetLiveLocationQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	loc, err := s.h.GetLiveLocation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, locationFrom(loc))
}

// GetDeliveryIssue handles GET /api/v1/orders/{orderId}/issue.
func (s *Server) GetDeliveryIssue(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetDeliveryIssueQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	issue, err := s.h.GetDeliveryIssue.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Issue{Type: issue.Type(), Description: issue.Description()})
}

// ReportIssue handles PUT /api/v1/orders/{orderId}/issue.
func (s *Server) ReportIssue(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req Issue
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewReportIssueCommand(orderID, req.Type, req.Description)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.ReportIssue.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
