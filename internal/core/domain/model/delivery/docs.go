// Package delivery holds the Delivery aggregate root. A delivery owns its order, the courier
// bound to it, the lifecycle time record (ready, pickup, delivered) and at most one issue.
package delivery
