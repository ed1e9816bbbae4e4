package order

import (
	"errors"
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"

	"github.com/samber/lo"
)

var (
	// ErrInvalidTransition is matched by every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrUnrecognizedStatus is matched by every *UnrecognizedStatusError.
	ErrUnrecognizedStatus = errors.New("unrecognized order status")
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Preparing
	GivenToCourier
	OnTransit
	Delivered
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Pending:        "PENDING",
	Accepted:       "ACCEPTED",
	Rejected:       "REJECTED",
	Preparing:      "PREPARING",
	GivenToCourier: "GIVEN_TO_COURIER",
	OnTransit:      "ON_TRANSIT",
	Delivered:      "DELIVERED",
}

// transitions lists the only legal successors of each state. States absent from the map
// (REJECTED, DELIVERED, Unknown) have none.
var transitions = map[Status][]Status{
	Pending:        {Accepted, Rejected},
	Accepted:       {Preparing},
	Preparing:      {GivenToCourier},
	GivenToCourier: {OnTransit},
	OnTransit:      {Delivered},
}

// AllStatuses returns the valid states in pipeline order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Rejected, Preparing, GivenToCourier, OnTransit, Delivered}
}

// Validate rejects Unknown and any value outside of the declared states.
func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used in logs and storage.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// WireName returns the lower-case name exchanged with remote services.
func (s Status) WireName() string {
	return strings.ToLower(s.String())
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return lo.Contains(transitions[s], next)
}

// ValidateTransition fails with *InvalidTransitionError unless (from, to) is in the
// transition table.
func ValidateTransition(from Status, to Status) error {
	if !from.CanTransitionTo(to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// ParseStatus maps a wire or display name to a Status. Matching ignores case and surrounding
// whitespace and accepts '-' or ' ' in place of '_'.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for _, s := range AllStatuses() {
		if statusNames[s] == normalized {
			return s, nil
		}
	}
	return Unknown, &UnrecognizedStatusError{Value: raw}
}

// InvalidTransitionError reports an illegal (From, To) pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnrecognizedStatusError reports a status string outside of the closed set.
type UnrecognizedStatusError struct {
	Value string
}

func (e *UnrecognizedStatusError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedStatus, e.Value)
}

func (e *UnrecognizedStatusError) Unwrap() error {
	return ErrUnrecognizedStatus
}
