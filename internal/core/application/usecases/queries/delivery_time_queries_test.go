package queries_test

import (
	"testing"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/clock"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeliveryTimeQueryHandler_Handle(t *testing.T) {
	readyAt := now.Add(-20 * time.Minute)
	d := storedDelivery(kernel.NewUUID(), kernel.MustNewLocation(1, 1), order.Preparing,
		timeRecord(ptr(readyAt), nil, nil), nil, nil)

	tests := []struct {
		name    string
		stage   delivery.Stage
		want    time.Time
		wantErr error
	}{
		{name: "recorded stage", stage: delivery.StageReady, want: readyAt},
		{name: "unset stage", stage: delivery.StagePickUp, wantErr: delivery.ErrTimeNotSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			reader := new(MockDeliveryReader)
			reader.On("GetByOrderID", ctx, d.Order().ID()).Return(d, nil).Once()
			query, err := queries.NewGetDeliveryTimeQuery(d.Order().ID(), tt.stage)
			require.NoError(t, err)

			// When
			got, err := queries.NewGetDeliveryTimeQueryHandler(reader).Handle(ctx, query)

			// Then
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, errs.ErrObjectNotFound)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
			reader.AssertExpectations(t)
		})
	}
}

func TestGetDeliveryTimeQueryHandler_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	reader := new(MockDeliveryReader)
	reader.On("GetByOrderID", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()
	query, err := queries.NewGetDeliveryTimeQuery(orderID, delivery.StageReady)
	require.NoError(t, err)

	_, err = queries.NewGetDeliveryTimeQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetEtaQueryHandler_Handle(t *testing.T) {
	pickUp := now.Add(-15 * time.Minute)
	delivered := now.Add(-5 * time.Minute)

	tests := []struct {
		name   string
		record delivery.TimeRecord
		want   time.Time
	}{
		{name: "nothing recorded", record: timeRecord(nil, nil, nil), want: now.Add(time.Hour)},
		{name: "picked up", record: timeRecord(nil, ptr(pickUp), nil), want: pickUp.Add(time.Hour)},
		{name: "delivered", record: timeRecord(nil, ptr(pickUp), ptr(delivered)), want: delivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			d := storedDelivery(kernel.NewUUID(), kernel.MustNewLocation(1, 1), order.OnTransit, tt.record, nil, nil)
			reader := new(MockDeliveryReader)
			reader.On("GetByOrderID", ctx, d.Order().ID()).Return(d, nil).Once()
			handler := queries.NewGetEtaQueryHandler(reader, services.NewEtaCalculator(time.Hour), clock.NewFixed(now))
			query, err := queries.NewGetEtaQuery(d.Order().ID())
			require.NoError(t, err)

			// When
			got, err := handler.Handle(ctx, query)

			// Then
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestGetEtaQueryHandler_NotConstructed(t *testing.T) {
	handler := queries.NewGetEtaQueryHandler(new(MockDeliveryReader), services.NewEtaCalculator(0), clock.NewFixed(now))

	_, err := handler.Handle(t.Context(), queries.GetEtaQuery{})

	require.ErrorIs(t, err, queries.ErrGetEtaQueryIsNotConstructed)
}
