package delivery

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeNotSet is the cause of not-found errors for stages that were never recorded.
	ErrTimeNotSet = errors.New("lifecycle time is not set")
	// ErrLifecycleOutOfOrder is returned when a write would break ready <= pickup <= delivered.
	ErrLifecycleOutOfOrder = errors.New("lifecycle times are out of order")
)

// TimeRecord keeps the optional ready, pickup and delivered timestamps of a delivery.
//
// Stages may be written in any order or skipped, but the values that are present always
// satisfy ready <= pickup <= delivered. The zero value is an empty record.
type TimeRecord struct {
	times [3]*time.Time
}

// NewTimeRecord builds a record from possibly absent timestamps, checking their order.
func NewTimeRecord(ready, pickUp, delivered *time.Time) (TimeRecord, error) {
	var r TimeRecord
	for i, t := range []*time.Time{ready, pickUp, delivered} {
		if t == nil {
			continue
		}
		if err := r.Set(Stages()[i], *t); err != nil {
			return TimeRecord{}, err
		}
	}
	return r, nil
}

// Get returns the time for the stage, or ErrTimeNotSet.
func (r TimeRecord) Get(stage Stage) (time.Time, error) {
	idx, err := index(stage)
	if err != nil {
		return time.Time{}, err
	}
	if r.times[idx] == nil {
		return time.Time{}, ErrTimeNotSet
	}
	return *r.times[idx], nil
}

// Lookup is Get without the error: ok is false when the stage is unset.
func (r TimeRecord) Lookup(stage Stage) (time.Time, bool) {
	t, err := r.Get(stage)
	return t, err == nil
}

// ReadyTime returns a copy of the ready time, nil when unset.
func (r TimeRecord) ReadyTime() *time.Time {
	return clone(r.times[0])
}

// PickUpTime returns a copy of the pickup time, nil when unset.
func (r TimeRecord) PickUpTime() *time.Time {
	return clone(r.times[1])
}

// DeliveredTime returns a copy of the delivered time, nil when unset.
func (r TimeRecord) DeliveredTime() *time.Time {
	return clone(r.times[2])
}

// Set records t for the stage. Overwriting a stage is allowed as long as the result stays
// ordered against every other present stage.
func (r *TimeRecord) Set(stage Stage, t time.Time) error {
	idx, err := index(stage)
	if err != nil {
		return err
	}

	for other := range r.times {
		if other == idx || r.times[other] == nil {
			continue
		}
		present := *r.times[other]
		if (other < idx && t.Before(present)) || (other > idx && t.After(present)) {
			return fmt.Errorf("%w: %s at %s conflicts with %s at %s",
				ErrLifecycleOutOfOrder, stage, t.Format(time.RFC3339), Stages()[other], present.Format(time.RFC3339))
		}
	}

	r.times[idx] = &t
	return nil
}

func index(stage Stage) (int, error) {
	switch stage {
	case StageReady, StagePickUp, StageDelivered:
		return int(stage) - 1, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownStage, stage)
}

func clone(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
