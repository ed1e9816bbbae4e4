// Package http exposes the tracking commands and queries as a JSON API on echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// QueryHandler is any use case that answers with a value.
type QueryHandler[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is any use case that answers with an error only.
type CommandHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateDelivery          QueryHandler[commands.CreateDeliveryCommand, *delivery.Delivery]
	ChangeOrderStatus       QueryHandler[commands.ChangeOrderStatusCommand, *order.Order]
	AssignCourierToVendor   QueryHandler[commands.AssignCourierToVendorCommand, *vendor.Vendor]
	UpdateDeliveryZone      QueryHandler[commands.UpdateDeliveryZoneCommand, *vendor.Vendor]
	FindOrCreateVendor      QueryHandler[commands.FindOrCreateVendorCommand, *vendor.Vendor]
	UpdateDeliveryTime      CommandHandler[commands.UpdateDeliveryTimeCommand]
	AssignCourierToDelivery CommandHandler[commands.AssignCourierToDeliveryCommand]
	ReportIssue             CommandHandler[commands.ReportIssueCommand]
	RateDelivery            CommandHandler[commands.RateDeliveryCommand]

	// Query handlers
	GetOrderStatus         QueryHandler[queries.GetOrderStatusQuery, order.Status]
	GetDeliveryID          QueryHandler[queries.GetDeliveryIDQuery, kernel.UUID]
	GetCourierOfOrder      QueryHandler[queries.GetCourierOfOrderQuery, kernel.UUID]
	GetDeliveryTime        QueryHandler[queries.GetDeliveryTimeQuery, time.Time]
	GetEta                 QueryHandler[queries.GetEtaQuery, time.Time]
	GetLiveLocation        QueryHandler[queries.GetLiveLocationQuery, kernel.Location]
	GetDeliveryIssue       QueryHandler[queries.GetDeliveryIssueQuery, delivery.Issue]
	GetAssignedCouriers    QueryHandler[queries.GetAssignedCouriersQuery, []kernel.UUID]
	GetDeliveryZone        QueryHandler[queries.GetDeliveryZoneQuery, float64]
	GetVendorLocation      QueryHandler[queries.GetVendorLocationQuery, kernel.Location]
	GetInTransitDeliveries QueryHandler[queries.GetInTransitDeliveriesQuery, []queries.GetInTransitDeliveriesQueryResponse]
	GetRating              QueryHandler[queries.GetRatingQuery, delivery.Rating]
	GetCourierStatistics   QueryHandler[queries.GetCourierStatisticsQuery, queries.GetCourierStatisticsQueryResponse]
	GetVendorAverage       QueryHandler[queries.GetVendorAverageQuery, queries.GetVendorAverageQueryResponse]
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer wires the use case handlers. A nil logger falls back to slog.Default.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/in-transit", s.GetInTransitDeliveries)

	o := api.Group("/orders/:orderId")
	o.GET("/status", s.GetOrderStatus)
	o.PUT("/status", s.ChangeOrderStatus)
	o.GET("/delivery", s.GetDeliveryID)
	o.GET("/courier", s.GetCourierOfOrder)
	o.PUT("/courier", s.AssignCourierToDelivery)
	o.GET("/times/:stage", s.GetDeliveryTime)
	o.PUT("/times/:stage", s.UpdateDeliveryTime)
	o.GET("/eta", s.GetEta)
	o.GET("/location", s.GetLiveLocation)
	o.GET("/issue", s.GetDeliveryIssue)
	o.PUT("/issue", s.ReportIssue)

	v := api.Group("/vendors/:vendorId")
	v.PUT("", s.FindOrCreateVendor)
	v.GET("/couriers", s.GetAssignedCouriers)
	v.POST("/couriers", s.AssignCourierToVendor)
	v.GET("/zone", s.GetDeliveryZone)
	v.PUT("/zone", s.UpdateDeliveryZone)
	v.GET("/location", s.GetVendorLocation)

	a := api.Group("/analytics")
	a.GET("/orders/:orderId/rating", s.GetRating)
	a.PUT("/orders/:orderId/rating", s.SetRating)
	a.GET("/couriers/:courierId/deliveries-per-day", s.GetCourierDeliveriesPerDay)
	a.GET("/couriers/:courierId/successful-deliveries", s.GetCourierSuccessfulDeliveries)
	a.GET("/couriers/:courierId/courier-issues", s.GetCourierIssues)
	a.GET("/couriers/:courierId/efficiency", s.GetCourierEfficiency)
	a.GET("/vendors/:vendorId/vendor-average", s.GetVendorAverage)
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail writes err with the status of its category. Unexpected failures are logged and their
// text is not leaked to the client.
func (s *Server) fail(c echo.Context, err error) error {
	code := errorStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		msg = http.StatusText(code)
		if errors.Is(err, errs.ErrMicroserviceCommunication) {
			msg = "remote service unavailable"
		}
	}
	return c.JSON(code, Error{Code: code, Message: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: msg})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrUnrecognizedStatus),
		errors.Is(err, vendor.ErrVendorHasNoCouriers),
		errors.Is(err, vendor.ErrCourierNotAssigned),
		errors.Is(err, delivery.ErrLifecycleOutOfOrder),
		errors.Is(err, delivery.ErrDeliveryIsClosed),
		errors.Is(err, delivery.ErrDeliveryIsNotDelivered),
		errors.Is(err, delivery.ErrUnknownStage),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}
