// Package order holds the Order entity and its status state machine.
//
// Statuses follow a linear pipeline with a single branch at the start:
//
//	PENDING ──┬──> ACCEPTED ──> PREPARING ──> GIVEN_TO_COURIER ──> ON_TRANSIT ──> DELIVERED
//	          └──> REJECTED
//
// REJECTED and DELIVERED are terminal. Every other pair, same-state moves included, fails
// ValidateTransition with an *InvalidTransitionError. Free-form status strings coming from
// callers go through ParseStatus before they reach the validator.
package order
