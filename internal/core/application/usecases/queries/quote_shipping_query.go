// Package queries contains read-only application operations.
package queries

import (
	"errors"
	"fmt"
	"slices"

	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/model/shipping"
	"checkout/internal/pkg/guard"
)

var (
	ErrQuoteShippingQueryIsNotConstructed = errors.New(
		"QuoteShippingQuery must be created via NewQuoteShippingQuery constructor",
	)
)

// QuoteShippingQuery asks what an order would cost for every shipping destination.
type QuoteShippingQuery struct { //nolint:recvcheck //using for validation
	customer customer.Customer
	items    []order.Item

	guard guard.ConstructorGuard
}

func NewQuoteShippingQuery(c customer.Customer, items []order.Item) (QuoteShippingQuery, error) {
	errList := []error{c.Validate()}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return QuoteShippingQuery{}, err
	}

	return QuoteShippingQuery{
		customer: c,
		items:    slices.Clone(items),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteShippingQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShippingQueryIsNotConstructed)
}

func (q QuoteShippingQuery) Customer() customer.Customer {
	return q.customer
}

func (q QuoteShippingQuery) Items() []order.Item {
	return slices.Clone(q.items)
}

// ShippingQuote is the priced outcome of one destination.
type ShippingQuote struct {
	Destination shipping.Destination
	Subtotal    kernel.Money
	Shipping    kernel.Money
	FinalTotal  kernel.Money
}
