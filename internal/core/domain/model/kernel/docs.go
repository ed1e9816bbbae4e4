// Package kernel holds the value objects shared by every aggregate of the tracking service:
// UUID identifiers and planar Location coordinates together with the geometry used for
// delivery-zone checks and live-position interpolation.
//
// Values are immutable and must be built through their constructors; zero values fail
// Validate.
package kernel
