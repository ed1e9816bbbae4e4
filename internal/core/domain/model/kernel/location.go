package kernel

import (
	"errors"
	"fmt"
	"math"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned by Validate for a Location that was not created by
// NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a point given by latitude and longitude.
//
// Distances are planar: the pair is treated as cartesian coordinates and the unit of the
// result is the unit of the coordinates. Delivery-zone radii are expressed in that same unit.
// No geographic range is enforced, only finiteness.
type Location struct { //nolint:recvcheck // setters take a pointer, everything else a value
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates and builds a Location. NaN and infinite coordinates are rejected.
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation panics when the coordinates are not finite. Intended for constants and tests.
func MustNewLocation(latitude float64, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate ensures the location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the first coordinate.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the second coordinate.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String formats the location for logs, e.g. "Location(1,2)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.latitude, l.longitude)
}

// IsEqual reports exact coordinate equality.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// Distance returns the euclidean distance between the two points.
//
//	a := kernel.MustNewLocation(0, 0)
//	b := kernel.MustNewLocation(3, 4)
//	d, _ := a.Distance(b) // 5
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return math.Hypot(other.latitude-l.latitude, other.longitude-l.longitude), nil
}

// Interpolate returns the point at the given fraction of the straight segment from l to
// target. The fraction is clamped to [0, 1], so the result never leaves the segment; 0 yields
// l and 1 yields target exactly.
func (l Location) Interpolate(target Location, fraction float64) (Location, error) {
	if err := errors.Join(l.Validate(), target.Validate()); err != nil {
		return Location{}, err
	}
	if math.IsNaN(fraction) {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("fraction", errors.New("NaN is not a fraction"))
	}

	return NewLocation(
		LinearInterpolation(l.latitude, target.latitude, fraction),
		LinearInterpolation(l.longitude, target.longitude, fraction),
	)
}

// LinearInterpolation computes start*(1-fraction) + end*fraction with fraction clamped to
// [0, 1]. The weighted form never forms end-start, so any pair of finite inputs yields a
// finite result. The bounds are returned exactly rather than through the formula.
//
// Example:
//
//	LinearInterpolation(0, 3600, 0.25) // 900
//	LinearInterpolation(2, 4, 12)      // 4, the fraction is clamped
func LinearInterpolation(start float64, end float64, fraction float64) float64 {
	switch {
	case fraction <= 0:
		return start
	case fraction >= 1:
		return end
	case start == end:
		return start
	}
	return start*(1-fraction) + end*fraction
}

func (l *Location) setLatitude(latitude float64) error {
	if err := checkFinite(latitude); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if err := checkFinite(longitude); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}
	l.longitude = longitude
	return nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v is not a finite number", v)
	}
	return nil
}
