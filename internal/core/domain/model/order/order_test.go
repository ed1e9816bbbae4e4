package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	destination := kernel.MustNewLocation(3, 4)

	t.Run("starts pending", func(t *testing.T) {
		o, err := order.NewOrder(id, vendorID, customerID, destination)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, destination, o.Destination())
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsClosed())
	})

	t.Run("joins all validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, customerID, kernel.Location{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "vendor id")
		assert.Contains(t, err.Error(), "location must be created")
		assert.NotContains(t, err.Error(), "customer id")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("keeps persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.MustNewLocation(1, 1), order.OnTransit)

		require.NoError(t, err)
		assert.Equal(t, order.OnTransit, o.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.MustNewLocation(1, 1), order.Unknown)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewLocation(2, 2))
		require.NoError(t, err)
		return o
	}

	t.Run("walks the happy path", func(t *testing.T) {
		o := newOrder(t)

		for _, next := range []order.Status{
			order.Accepted, order.Preparing, order.GivenToCourier, order.OnTransit, order.Delivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
		assert.True(t, o.IsClosed())
	})

	t.Run("illegal move leaves status untouched", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Accepted))

		err := o.ChangeStatus(order.OnTransit)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("reject from pending", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Reject())

		assert.Equal(t, order.Rejected, o.Status())
		require.ErrorIs(t, o.ChangeStatus(order.Accepted), order.ErrInvalidTransition)
	})

	t.Run("reject after acceptance fails", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Accepted))

		require.ErrorIs(t, o.Reject(), order.ErrInvalidTransition)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewLocation(0, 0))
	b, _ := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewLocation(5, 5), order.Accepted)
	c, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewLocation(0, 0))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
