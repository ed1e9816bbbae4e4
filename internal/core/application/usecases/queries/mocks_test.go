package queries_test

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryReader struct{ mock.Mock }

func (m *MockDeliveryReader) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockVendorReader struct{ mock.Mock }

func (m *MockVendorReader) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

// storedDelivery rebuilds a delivery the way a repository would.
func storedDelivery(
	vendorID kernel.UUID,
	destination kernel.Location,
	status order.Status,
	record delivery.TimeRecord,
	courierID *kernel.UUID,
	issue *delivery.Issue,
) *delivery.Delivery {
	o, err := order.RestoreOrder(kernel.NewUUID(), vendorID, kernel.NewUUID(), destination, status)
	if err != nil {
		panic(err)
	}
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), o, courierID, record, issue, nil)
	if err != nil {
		panic(err)
	}
	return d
}

func timeRecord(ready, pickUp, delivered *time.Time) delivery.TimeRecord {
	r, err := delivery.NewTimeRecord(ready, pickUp, delivered)
	if err != nil {
		panic(err)
	}
	return r
}
