package shipping

import "checkout/internal/core/domain/model/kernel"

// Policy computes the shipping fee for an order subtotal.
//
// Implementations must return a constructed, non-negative Money for any valid
// subtotal, and Validate must fail for values that are not usable policies.
type Policy interface {
	ComputeFee(subtotal kernel.Money) kernel.Money
	Validate() error
}

var _ Policy = Destination(0)
