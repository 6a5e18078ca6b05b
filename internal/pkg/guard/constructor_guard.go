// Package guard lets value objects and entities tell a constructed instance apart
// from a zero value created by a bare struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain objects whose zero value is not a valid
// instance. Only NewConstructorGuard sets the flag, so a struct literal or a
// `var x T` declaration always fails Validate.
//
// Example usage:
//
//	var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPrice(cents int64) (Price, error) {
//	    if cents < 0 {
//	        return Price{}, errors.New("price cannot be negative")
//	    }
//	    return Price{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
//
// The guard holds a single bool and is safe to copy and to read concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError if the owner was not built by its constructor.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
