package delivery_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestTimeRecord_Empty(t *testing.T) {
	var r delivery.TimeRecord

	for _, stage := range delivery.Stages() {
		_, err := r.Get(stage)
		require.ErrorIs(t, err, delivery.ErrTimeNotSet)

		_, ok := r.Lookup(stage)
		assert.False(t, ok)
	}
	assert.Nil(t, r.ReadyTime())
	assert.Nil(t, r.PickUpTime())
	assert.Nil(t, r.DeliveredTime())
}

func TestTimeRecord_Set(t *testing.T) {
	t.Run("stages in order", func(t *testing.T) {
		var r delivery.TimeRecord

		require.NoError(t, r.Set(delivery.StageReady, at(0)))
		require.NoError(t, r.Set(delivery.StagePickUp, at(10)))
		require.NoError(t, r.Set(delivery.StageDelivered, at(40)))

		got, err := r.Get(delivery.StagePickUp)
		require.NoError(t, err)
		assert.Equal(t, at(10), got)
		assert.Equal(t, at(40), *r.DeliveredTime())
	})

	t.Run("stages may be skipped or written out of order", func(t *testing.T) {
		var r delivery.TimeRecord

		require.NoError(t, r.Set(delivery.StageDelivered, at(30)))
		require.NoError(t, r.Set(delivery.StageReady, at(5)))

		assert.Nil(t, r.PickUpTime())
		assert.Equal(t, at(5), *r.ReadyTime())
	})

	t.Run("equal timestamps are allowed", func(t *testing.T) {
		var r delivery.TimeRecord

		require.NoError(t, r.Set(delivery.StageReady, at(5)))
		require.NoError(t, r.Set(delivery.StagePickUp, at(5)))
		require.NoError(t, r.Set(delivery.StageDelivered, at(5)))
	})

	t.Run("pickup before ready is refused", func(t *testing.T) {
		var r delivery.TimeRecord
		require.NoError(t, r.Set(delivery.StageReady, at(20)))

		err := r.Set(delivery.StagePickUp, at(10))

		require.ErrorIs(t, err, delivery.ErrLifecycleOutOfOrder)
		assert.Nil(t, r.PickUpTime())
	})

	t.Run("ready after delivered is refused across a gap", func(t *testing.T) {
		var r delivery.TimeRecord
		require.NoError(t, r.Set(delivery.StageDelivered, at(20)))

		require.ErrorIs(t, r.Set(delivery.StageReady, at(21)), delivery.ErrLifecycleOutOfOrder)
	})

	t.Run("overwrite is checked against neighbours", func(t *testing.T) {
		var r delivery.TimeRecord
		require.NoError(t, r.Set(delivery.StageReady, at(0)))
		require.NoError(t, r.Set(delivery.StagePickUp, at(10)))

		require.NoError(t, r.Set(delivery.StagePickUp, at(15)))
		require.ErrorIs(t, r.Set(delivery.StageReady, at(16)), delivery.ErrLifecycleOutOfOrder)
		assert.Equal(t, at(0), *r.ReadyTime())
	})

	t.Run("unknown stage", func(t *testing.T) {
		var r delivery.TimeRecord

		require.ErrorIs(t, r.Set(delivery.Stage(9), at(0)), delivery.ErrUnknownStage)
	})
}

func TestTimeRecord_CopiesAreIndependent(t *testing.T) {
	var r delivery.TimeRecord
	require.NoError(t, r.Set(delivery.StageReady, at(0)))

	copied := r
	require.NoError(t, copied.Set(delivery.StageReady, at(3)))
	*r.ReadyTime() = at(100)

	assert.Equal(t, at(0), *r.ReadyTime())
	assert.Equal(t, at(3), *copied.ReadyTime())
}

func TestNewTimeRecord(t *testing.T) {
	ready, pickUp := at(0), at(10)

	r, err := delivery.NewTimeRecord(&ready, &pickUp, nil)
	require.NoError(t, err)
	assert.Equal(t, pickUp, *r.PickUpTime())

	_, err = delivery.NewTimeRecord(&pickUp, &ready, nil)
	require.ErrorIs(t, err, delivery.ErrLifecycleOutOfOrder)
}

func TestParseStage(t *testing.T) {
	for raw, expected := range map[string]delivery.Stage{
		"ready":     delivery.StageReady,
		"PICKUP":    delivery.StagePickUp,
		"pick-up":   delivery.StagePickUp,
		"delivered": delivery.StageDelivered,
	} {
		got, err := delivery.ParseStage(raw)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := delivery.ParseStage("eaten")
	require.ErrorIs(t, err, delivery.ErrUnknownStage)
}
