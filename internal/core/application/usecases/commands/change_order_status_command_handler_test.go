package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewLocation(1, 1), status)
	require.NoError(t, err)
	return o
}

func newChangeOrderStatusHandler(uow *MockUoW, remote *MockOrdersService, metrics *MockMetrics) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(orderUoWFactory{uow: uow}, remote, metrics, slog.New(slog.DiscardHandler))
}

func TestChangeOrderStatusCommandHandler_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), actorID, "accepted")
	require.NoError(t, err)

	uow, repo := new(MockUoW), new(MockOrderRepository)
	remote, metrics := new(MockOrdersService), new(MockMetrics)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		remote.On("PutOrderStatus", ctx, stored.ID(), actorID, "accepted").Return(true, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics.On("StatusChanged", order.Accepted).Once()

	// When
	changed, err := newChangeOrderStatusHandler(uow, remote, metrics).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, changed.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	remote.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_InvalidTransitionNeverReachesRemote(t *testing.T) {
	// Given
	ctx := t.Context()
	stored := newStoredOrder(t, order.Accepted)
	cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), kernel.NewUUID(), "ON_TRANSIT")
	require.NoError(t, err)

	uow, repo, remote := new(MockUoW), new(MockOrderRepository), new(MockOrdersService)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	// When
	_, err = newChangeOrderStatusHandler(uow, remote, new(MockMetrics)).Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	remote.AssertNotCalled(t, "PutOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_RemoteFailureCommitsNothing(t *testing.T) {
	tests := []struct {
		name string
		ack  bool
		err  error
	}{
		{name: "not acknowledged", ack: false},
		{name: "transport error", err: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			stored := newStoredOrder(t, order.Preparing)
			actorID := kernel.NewUUID()
			cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), actorID, "given_to_courier")
			require.NoError(t, err)

			uow, repo, remote := new(MockUoW), new(MockOrderRepository), new(MockOrdersService)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
			remote.On("PutOrderStatus", ctx, stored.ID(), actorID, "given_to_courier").Return(tt.ack, tt.err).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			// When
			_, err = newChangeOrderStatusHandler(uow, remote, new(MockMetrics)).Handle(ctx, cmd)

			// Then
			require.ErrorIs(t, err, errs.ErrMicroserviceCommunication)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
			remote.AssertExpectations(t)
		})
	}
}

func TestChangeOrderStatusCommandHandler_OrderNotFound(t *testing.T) {
	// Given
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, kernel.NewUUID(), "accepted")
	require.NoError(t, err)

	uow, repo := new(MockUoW), new(MockOrderRepository)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	// When
	_, err = newChangeOrderStatusHandler(uow, new(MockOrdersService), new(MockMetrics)).Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("parses the status", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), " On-Transit ")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.OnTransit, cmd.Status())
	})

	t.Run("unrecognized status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), "teleported")

		require.ErrorIs(t, err, order.ErrUnrecognizedStatus)
	})

	t.Run("zero value", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}
