package commands_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/vendor"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type vendorUoWFactory struct{ uow *MockUoW }

func (f vendorUoWFactory) Create() commands.VendorUoW { return f.uow }

type deliveryUoWFactory struct{ uow *MockUoW }

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

type MockUsersService struct{ mock.Mock }

func (m *MockUsersService) GetVendorLocation(ctx context.Context, vendorID kernel.UUID) (*kernel.Location, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Location), args.Error(1)
}

func (m *MockUsersService) GetUserType(ctx context.Context, userID kernel.UUID) (string, bool, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockOrdersService struct{ mock.Mock }

func (m *MockOrdersService) PutOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	actorID kernel.UUID,
	status string,
) (bool, error) {
	args := m.Called(ctx, orderID, actorID, status)
	return args.Bool(0), args.Error(1)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) StatusChanged(to order.Status) { m.Called(to) }
func (m *MockMetrics) ZoneRejected()                 { m.Called() }
func (m *MockMetrics) InTransit(count int)           { m.Called(count) }

func newVendorWithCouriers(address kernel.Location, zone float64, couriers ...kernel.UUID) *vendor.Vendor {
	v, err := vendor.RestoreVendor(kernel.NewUUID(), address, zone, couriers)
	if err != nil {
		panic(err)
	}
	return v
}

func newDeliveryFor(vendorID kernel.UUID, status order.Status) *delivery.Delivery {
	o, err := order.RestoreOrder(kernel.NewUUID(), vendorID, kernel.NewUUID(), kernel.MustNewLocation(3, 4), status)
	if err != nil {
		panic(err)
	}
	d, err := delivery.NewDelivery(kernel.NewUUID(), o)
	if err != nil {
		panic(err)
	}
	return d
}
