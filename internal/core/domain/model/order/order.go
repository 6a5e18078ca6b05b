package order

import (
	"errors"
	"fmt"
	"slices"

	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/shipping"
	"checkout/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a retail purchase. It combines a customer, an
// ordered list of items and the shipping policy used to price delivery.
//
// Order follows these invariants:
//   - Customer and every item were built by their constructors
//   - The shipping policy is non-nil and valid
//   - Nothing changes after construction; totals are recomputed on each call
type Order struct {
	// id correlates the order across logs and printers
	id kernel.UUID

	customer customer.Customer

	// items keeps the caller's order and is never shared with the caller
	items []Item

	policy shipping.Policy

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order, copying items. It fails with an errs.TypeMismatchError
// for every argument that is not a constructed value of the expected kind; all
// failures are joined into the returned error.
//
// Parameters:
//   - c: The customer, created via customer.NewCustomer
//   - items: The order lines in display order; may be empty
//   - policy: The shipping policy, e.g. shipping.Local
//
// Returns:
//   - *Order: A new order with a fresh ID
//   - error: Joined errs.TypeMismatchError values if any argument is invalid
//
// Example:
//
//	c, _ := customer.NewCustomer("Maria")
//	pen, _ := order.NewItemFromString("Pen", "2.50")
//	o, err := order.NewOrder(c, []order.Item{pen}, shipping.Local)
//	if err != nil {
//	    // Handle construction error
//	}
func NewOrder(c customer.Customer, items []Item, policy shipping.Policy) (*Order, error) {
	o := &Order{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomer(c),
		o.setItems(items),
		o.setPolicy(policy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Items returns a copy of the order's items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Policy() shipping.Policy {
	return o.policy
}

// ComputeSubtotal sums the item prices. An order without items has a zero subtotal.
func (o *Order) ComputeSubtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Price())
	}
	return subtotal
}

// ComputeShippingCost asks the shipping policy for the fee on the current subtotal.
func (o *Order) ComputeShippingCost() kernel.Money {
	if o.policy == nil {
		return kernel.ZeroMoney()
	}
	return o.policy.ComputeFee(o.ComputeSubtotal())
}

// ComputeFinalTotal is subtotal plus shipping cost.
func (o *Order) ComputeFinalTotal() kernel.Money {
	return o.ComputeSubtotal().Add(o.ComputeShippingCost())
}

func (o *Order) setCustomer(c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return errs.NewTypeMismatchErrorWithCause("customer", "a customer", err)
	}

	o.customer = c
	return nil
}

func (o *Order) setItems(items []Item) error {
	var err error
	for i, item := range items {
		if itemErr := item.Validate(); itemErr != nil {
			err = errors.Join(err, errs.NewTypeMismatchErrorWithCause(fmt.Sprintf("items[%d]", i), "an item", itemErr))
		}
	}
	if err != nil {
		return err
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setPolicy(policy shipping.Policy) error {
	if policy == nil {
		return errs.NewTypeMismatchError("policy", "a shipping policy")
	}
	if err := policy.Validate(); err != nil {
		return errs.NewTypeMismatchErrorWithCause("policy", "a shipping policy", err)
	}

	o.policy = policy
	return nil
}
