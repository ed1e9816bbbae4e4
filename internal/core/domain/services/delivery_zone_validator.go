package services

import (
	"fmt"
	"math"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ZoneEvaluation is the outcome of a delivery-zone check.
type ZoneEvaluation struct {
	WithinZone bool
	Distance   float64
}

// DeliveryZoneValidator decides whether a destination can be served by a vendor,
// using the planar distance of kernel.Location.
type DeliveryZoneValidator struct{}

// NewDeliveryZoneValidator returns the stateless validator.
func NewDeliveryZoneValidator() DeliveryZoneValidator {
	return DeliveryZoneValidator{}
}

// Evaluate reports whether destination lies within zoneRadius of vendorAddress. The border
// counts as inside.
func (DeliveryZoneValidator) Evaluate(
	vendorAddress kernel.Location,
	destination kernel.Location,
	zoneRadius float64,
) (ZoneEvaluation, error) {
	if math.IsNaN(zoneRadius) || zoneRadius < 0 {
		return ZoneEvaluation{}, errs.NewValueIsInvalidErrorWithCause("zone radius",
			fmt.Errorf("%v is not a non-negative radius", zoneRadius))
	}

	distance, err := vendorAddress.Distance(destination)
	if err != nil {
		return ZoneEvaluation{}, err
	}

	return ZoneEvaluation{
		WithinZone: distance <= zoneRadius,
		Distance:   distance,
	}, nil
}
