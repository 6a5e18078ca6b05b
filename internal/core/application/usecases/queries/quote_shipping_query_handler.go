package queries

import (
	"context"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/model/shipping"
)

// QuoteShippingQueryHandler prices a basket against every shipping destination.
type QuoteShippingQueryHandler struct{}

func NewQuoteShippingQueryHandler() QuoteShippingQueryHandler {
	return QuoteShippingQueryHandler{}
}

// Handle returns one quote per destination, in shipping.Destinations order.
func (h QuoteShippingQueryHandler) Handle(ctx context.Context, query QuoteShippingQuery) ([]ShippingQuote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	destinations := shipping.Destinations()
	quotes := make([]ShippingQuote, 0, len(destinations))
	for _, d := range destinations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		o, err := order.NewOrder(query.Customer(), query.Items(), d)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, ShippingQuote{
			Destination: d,
			Subtotal:    o.ComputeSubtotal(),
			Shipping:    o.ComputeShippingCost(),
			FinalTotal:  o.ComputeFinalTotal(),
		})
	}

	return quotes, nil
}
