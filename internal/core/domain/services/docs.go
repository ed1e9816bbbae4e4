// Package services provides the stateless domain services of the tracking service:
// the delivery-zone check run at creation time, the live-position estimator and the ETA
// calculator. Both time-based services share one assumed total transit duration.
package services
