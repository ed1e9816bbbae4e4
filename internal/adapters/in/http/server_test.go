package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryFunc[In any, Out any] func(ctx context.Context, in In) (Out, error)

func (f queryFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type commandFunc[In any] func(ctx context.Context, in In) error

func (f commandFunc[In]) Handle(ctx context.Context, in In) error {
	return f(ctx, in)
}

var (
	orderID    = kernel.MustUUIDFromString("7b2d4c9e-3f7a-4b0a-9d61-0c5e8a1f2b34")
	vendorID   = kernel.MustUUIDFromString("1c9a7e52-8d0b-4f3e-a6c1-5b2f9e0d7a18")
	customerID = kernel.MustUUIDFromString("e4f1b83a-62c5-4d97-8a0e-3b7c1d9f5e26")
	courierID  = kernel.MustUUIDFromString("9d3e6a10-4b8f-4c27-b5d2-8e1a0f7c3b49")
)

func serve(t *testing.T, h Handlers, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	NewServer(h, slog.New(slog.DiscardHandler)).RegisterRoutes(e)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "order not found",
			err:  errs.NewObjectNotFoundErrorWithCause("orderID", orderID.String(), order.ErrOrderNotFound),
			want: http.StatusNotFound,
		},
		{name: "order already exists", err: fmt.Errorf("add: %w", order.ErrOrderAlreadyExists), want: http.StatusConflict},
		{name: "invalid transition", err: order.ValidateTransition(order.Delivered, order.Pending), want: http.StatusBadRequest},
		{name: "no couriers", err: vendor.ErrVendorHasNoCouriers, want: http.StatusBadRequest},
		{name: "courier not assigned", err: vendor.ErrCourierNotAssigned, want: http.StatusBadRequest},
		{name: "closed delivery", err: delivery.ErrDeliveryIsClosed, want: http.StatusBadRequest},
		{name: "out of order", err: delivery.ErrLifecycleOutOfOrder, want: http.StatusBadRequest},
		{name: "rating before delivery", err: delivery.ErrDeliveryIsNotDelivered, want: http.StatusBadRequest},
		{
			name: "missing rating",
			err:  errs.NewObjectNotFoundErrorWithCause("rating", orderID.String(), delivery.ErrRatingNotFound),
			want: http.StatusNotFound,
		},
		{name: "required value", err: errs.NewValueIsRequiredError("type"), want: http.StatusBadRequest},
		{name: "out of range", err: errs.NewValueIsOutOfRangeError("radius", -1.0, 0, nil), want: http.StatusBadRequest},
		{
			name: "remote failure",
			err:  errs.NewMicroserviceCommunicationError("orders", "PutOrderStatus"),
			want: http.StatusInternalServerError,
		},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}

func TestServer_CreateDelivery(t *testing.T) {
	body := fmt.Sprintf(
		`{"orderId":%q,"vendorId":%q,"customerId":%q,"destination":{"latitude":0,"longitude":3600}}`,
		orderID, vendorID, customerID,
	)

	t.Run("created", func(t *testing.T) {
		// Given
		var got commands.CreateDeliveryCommand
		h := Handlers{
			CreateDelivery: queryFunc[commands.CreateDeliveryCommand, *delivery.Delivery](
				func(_ context.Context, cmd commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
					got = cmd
					o, err := order.NewOrder(cmd.OrderID(), cmd.VendorID(), cmd.CustomerID(), cmd.Destination())
					if err != nil {
						return nil, err
					}
					return delivery.NewDelivery(kernel.NewUUID(), o)
				}),
		}

		// When
		rec := serve(t, h, http.MethodPost, "/api/v1/deliveries", body)

		// Then
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, got.OrderID().IsEqual(orderID))
		assert.True(t, got.VendorID().IsEqual(vendorID))

		resp := decode[Delivery](t, rec)
		assert.Equal(t, orderID.String(), resp.OrderID)
		assert.Equal(t, customerID.String(), resp.CustomerID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, Location{Latitude: 0, Longitude: 3600}, resp.Destination)
		assert.Nil(t, resp.CourierID)
		assert.Nil(t, resp.Issue)
	})

	t.Run("malformed order id never reaches the handler", func(t *testing.T) {
		h := Handlers{
			CreateDelivery: queryFunc[commands.CreateDeliveryCommand, *delivery.Delivery](
				func(context.Context, commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
					t.Fatal("handler must not be called")
					return nil, nil
				}),
		}

		rec := serve(t, h, http.MethodPost, "/api/v1/deliveries", `{"orderId":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("order already exists", func(t *testing.T) {
		h := Handlers{
			CreateDelivery: queryFunc[commands.CreateDeliveryCommand, *delivery.Delivery](
				func(context.Context, commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
					return nil, order.ErrOrderAlreadyExists
				}),
		}

		rec := serve(t, h, http.MethodPost, "/api/v1/deliveries", body)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, http.StatusConflict, decode[Error](t, rec).Code)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	path := "/api/v1/orders/" + orderID.String() + "/status"
	body := fmt.Sprintf(`{"actorId":%q,"status":"accepted"}`, customerID)

	t.Run("changed", func(t *testing.T) {
		h := Handlers{
			ChangeOrderStatus: queryFunc[commands.ChangeOrderStatusCommand, *order.Order](
				func(_ context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
					assert.Equal(t, order.Accepted, cmd.Status())
					assert.True(t, cmd.ActorID().IsEqual(customerID))
					return order.RestoreOrder(orderID, vendorID, customerID, kernel.MustNewLocation(0, 1), order.Accepted)
				}),
		}

		rec := serve(t, h, http.MethodPut, path, body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, OrderStatus{OrderID: orderID.String(), Status: "accepted"}, decode[OrderStatus](t, rec))
	})

	t.Run("unrecognized status", func(t *testing.T) {
		rec := serve(t, Handlers{}, http.MethodPut, path, fmt.Sprintf(`{"actorId":%q,"status":"lost"}`, customerID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid transition", func(t *testing.T) {
		h := Handlers{
			ChangeOrderStatus: queryFunc[commands.ChangeOrderStatusCommand, *order.Order](
				func(context.Context, commands.ChangeOrderStatusCommand) (*order.Order, error) {
					return nil, order.ValidateTransition(order.Delivered, order.Accepted)
				}),
		}

		rec := serve(t, h, http.MethodPut, path, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remote failure hides the cause", func(t *testing.T) {
		h := Handlers{
			ChangeOrderStatus: queryFunc[commands.ChangeOrderStatusCommand, *order.Order](
				func(context.Context, commands.ChangeOrderStatusCommand) (*order.Order, error) {
					return nil, errs.NewMicroserviceCommunicationErrorWithCause(
						"orders", "PutOrderStatus", errors.New("dial tcp 10.0.0.7:80"))
				}),
		}

		rec := serve(t, h, http.MethodPut, path, body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode[Error](t, rec)
		assert.Equal(t, "remote service unavailable", resp.Message)
		assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	})
}

func TestServer_DeliveryTimes(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	t.Run("unknown stage never reaches the handler", func(t *testing.T) {
		rec := serve(t, Handlers{}, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/times/lunch", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get pickup time", func(t *testing.T) {
		h := Handlers{
			GetDeliveryTime: queryFunc[queries.GetDeliveryTimeQuery, time.Time](
				func(_ context.Context, q queries.GetDeliveryTimeQuery) (time.Time, error) {
					assert.Equal(t, delivery.StagePickUp, q.Stage())
					return at, nil
				}),
		}

		rec := serve(t, h, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/times/pick-up", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, at.Equal(decode[TimeUpdate](t, rec).Time))
	})

	t.Run("unset time", func(t *testing.T) {
		h := Handlers{
			GetDeliveryTime: queryFunc[queries.GetDeliveryTimeQuery, time.Time](
				func(context.Context, queries.GetDeliveryTimeQuery) (time.Time, error) {
					return time.Time{}, errs.NewObjectNotFoundErrorWithCause("ready time", orderID.String(), delivery.ErrTimeNotSet)
				}),
		}

		rec := serve(t, h, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/times/ready", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update delivered time", func(t *testing.T) {
		var got commands.UpdateDeliveryTimeCommand
		h := Handlers{
			UpdateDeliveryTime: commandFunc[commands.UpdateDeliveryTimeCommand](
				func(_ context.Context, cmd commands.UpdateDeliveryTimeCommand) error {
					got = cmd
					return nil
				}),
		}

		rec := serve(t, h, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/times/delivered",
			`{"time":"2026-03-14T12:30:00Z"}`)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, delivery.StageDelivered, got.Stage())
		assert.True(t, at.Equal(got.At()))
	})
}

func TestServer_GetLiveLocation(t *testing.T) {
	t.Run("estimated", func(t *testing.T) {
		h := Handlers{
			GetLiveLocation: queryFunc[queries.GetLiveLocationQuery, kernel.Location](
				func(context.Context, queries.GetLiveLocationQuery) (kernel.Location, error) {
					return kernel.MustNewLocation(0, 1800), nil
				}),
		}

		rec := serve(t, h, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/location", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, Location{Latitude: 0, Longitude: 1800}, decode[Location](t, rec))
	})

	t.Run("unknown order", func(t *testing.T) {
		h := Handlers{
			GetLiveLocation: queryFunc[queries.GetLiveLocationQuery, kernel.Location](
				func(context.Context, queries.GetLiveLocationQuery) (kernel.Location, error) {
					return kernel.Location{}, errs.NewObjectNotFoundErrorWithCause(
						"orderID", orderID.String(), order.ErrOrderNotFound)
				}),
		}

		rec := serve(t, h, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/location", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Vendors(t *testing.T) {
	t.Run("assigned couriers", func(t *testing.T) {
		h := Handlers{
			GetAssignedCouriers: queryFunc[queries.GetAssignedCouriersQuery, []kernel.UUID](
				func(_ context.Context, q queries.GetAssignedCouriersQuery) ([]kernel.UUID, error) {
					assert.True(t, q.VendorID().IsEqual(vendorID))
					return []kernel.UUID{courierID}, nil
				}),
		}

		rec := serve(t, h, http.MethodGet, "/api/v1/vendors/"+vendorID.String()+"/couriers", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string][]string](t, rec)
		assert.Equal(t, []string{courierID.String()}, resp["couriers"])
	})

	t.Run("assign courier", func(t *testing.T) {
		h := Handlers{
			AssignCourierToVendor: queryFunc[commands.AssignCourierToVendorCommand, *vendor.Vendor](
				func(_ context.Context, cmd commands.AssignCourierToVendorCommand) (*vendor.Vendor, error) {
					return vendor.RestoreVendor(cmd.VendorID(), kernel.MustNewLocation(0, 0), 5000,
						[]kernel.UUID{cmd.CourierID()})
				}),
		}

		rec := serve(t, h, http.MethodPost, "/api/v1/vendors/"+vendorID.String()+"/couriers",
			fmt.Sprintf(`{"courierId":%q}`, courierID))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[Vendor](t, rec)
		assert.Equal(t, vendorID.String(), resp.ID)
		assert.Equal(t, []string{courierID.String()}, resp.Couriers)
		assert.InDelta(t, 5000, resp.DeliveryZone, 1e-9)
	})

	t.Run("zone update without couriers", func(t *testing.T) {
		h := Handlers{
			UpdateDeliveryZone: queryFunc[commands.UpdateDeliveryZoneCommand, *vendor.Vendor](
				func(context.Context, commands.UpdateDeliveryZoneCommand) (*vendor.Vendor, error) {
					return nil, vendor.ErrVendorHasNoCouriers
				}),
		}

		rec := serve(t, h, http.MethodPut, "/api/v1/vendors/"+vendorID.String()+"/zone", `{"radius":250}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetInTransitDeliveries(t *testing.T) {
	pickUp := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	h := Handlers{
		GetInTransitDeliveries: queryFunc[queries.GetInTransitDeliveriesQuery, []queries.GetInTransitDeliveriesQueryResponse](
			func(context.Context, queries.GetInTransitDeliveriesQuery) ([]queries.GetInTransitDeliveriesQueryResponse, error) {
				return []queries.GetInTransitDeliveriesQueryResponse{{
					OrderID:       orderID,
					VendorAddress: kernel.MustNewLocation(0, 0),
					Destination:   kernel.MustNewLocation(0, 3600),
					PickUpTime:    &pickUp,
				}}, nil
			}),
	}

	rec := serve(t, h, http.MethodGet, "/api/v1/deliveries/in-transit", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]InTransitDelivery](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, orderID.String(), resp[0].OrderID)
	assert.Equal(t, Location{Latitude: 0, Longitude: 3600}, resp[0].Destination)
	require.NotNil(t, resp[0].PickUpTime)
	assert.True(t, pickUp.Equal(*resp[0].PickUpTime))
}
