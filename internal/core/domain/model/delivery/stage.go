package delivery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStage is returned by ParseStage for names outside of ready, pickup and delivered.
var ErrUnknownStage = errors.New("unknown lifecycle stage")

// Stage names one of the three lifecycle timestamps.
type Stage int

// The lifecycle stages, in the order they must happen.
const (
	StageReady Stage = iota + 1
	StagePickUp
	StageDelivered
)

// Stages returns the lifecycle stages in chronological order.
func Stages() []Stage {
	return []Stage{StageReady, StagePickUp, StageDelivered}
}

// String returns the lower-case name used in URLs and logs.
func (s Stage) String() string {
	switch s {
	case StageReady:
		return "ready"
	case StagePickUp:
		return "pickup"
	case StageDelivered:
		return "delivered"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ParseStage accepts "ready", "pickup" (or "pick_up", "pick-up") and "delivered", ignoring case.
func ParseStage(raw string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ready":
		return StageReady, nil
	case "pickup", "pick_up", "pick-up":
		return StagePickUp, nil
	case "delivered":
		return StageDelivered, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, raw)
}
