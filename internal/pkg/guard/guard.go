// Package guard detects domain objects that were built as zero values instead of
// going through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities and value objects. Only NewConstructorGuard
// produces an armed guard, so a zero-value struct fails Validate.
//
//	type Vendor struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (v *Vendor) Validate() error {
//	    return v.guard.Validate(ErrVendorNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns an armed guard. Only constructors should call it.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for guards created by NewConstructorGuard and validationError
// (or ErrDefaultConstructorGuard when it is nil) otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
