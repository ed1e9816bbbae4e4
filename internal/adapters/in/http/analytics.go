package http

import (
	"math"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// SetRating handles PUT /api/v1/analytics/orders/{orderId}/rating.
func (s *Server) SetRating(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req Rating
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRateDeliveryCommand(orderID, req.Grade, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRating handles GET /api/v1/analytics/orders/{orderId}/rating.
func (s *Server) GetRating(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetRatingQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	rating, err := s.h.GetRating.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Rating{Grade: rating.Grade(), Comment: rating.Comment()})
}

// GetCourierDeliveriesPerDay handles GET /api/v1/analytics/couriers/{courierId}/deliveries-per-day.
func (s *Server) GetCourierDeliveriesPerDay(c echo.Context) error {
	return s.courierStatistic(c, func(r queries.GetCourierStatisticsQueryResponse) any {
		return r.DeliveriesPerDay
	})
}

// GetCourierSuccessfulDeliveries handles GET /api/v1/analytics/couriers/{courierId}/successful-deliveries.
func (s *Server) GetCourierSuccessfulDeliveries(c echo.Context) error {
	return s.courierStatistic(c, func(r queries.GetCourierStatisticsQueryResponse) any {
		return r.SuccessfulDeliveries
	})
}

// GetCourierIssues handles GET /api/v1/analytics/couriers/{courierId}/courier-issues.
func (s *Server) GetCourierIssues(c echo.Context) error {
	return s.courierStatistic(c, func(r queries.GetCourierStatisticsQueryResponse) any {
		return r.Issues
	})
}

// GetCourierEfficiency handles GET /api/v1/analytics/couriers/{courierId}/efficiency.
func (s *Server) GetCourierEfficiency(c echo.Context) error {
	return s.courierStatistic(c, func(r queries.GetCourierStatisticsQueryResponse) any {
		return r.Efficiency
	})
}

// GetVendorAverage handles GET /api/v1/analytics/vendors/{vendorId}/vendor-average. The body is
// the mean pickup-to-delivery time in whole minutes.
func (s *Server) GetVendorAverage(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetVendorAverageQuery(vendorID)
	if err != nil {
		return s.fail(c, err)
	}
	avg, err := s.h.GetVendorAverage.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, int(math.Round(avg.Average.Minutes())))
}

func (s *Server) courierStatistic(c echo.Context, pick func(queries.GetCourierStatisticsQueryResponse) any) error {
	courierID, err := pathUUID(c, "courierId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetCourierStatisticsQuery(courierID)
	if err != nil {
		return s.fail(c, err)
	}
	stats, err := s.h.GetCourierStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, pick(stats))
}
