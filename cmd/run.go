package cmd

import (
	"context"
	"fmt"
	"io"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
)

// Run prints the configured order's invoice and, when enabled, a comparison of
// the final total for every shipping destination written to out.
func Run(ctx context.Context, root CompositionRoot, out io.Writer) error {
	cfg := root.Config()

	items, err := cfg.LineItems()
	if err != nil {
		return err
	}

	cmd, err := commands.NewPrintInvoiceCommand(cfg.CustomerName, items, cfg.ShippingDestination)
	if err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}

	printHandler := root.CreatePrintInvoiceCommandHandler()
	o, err := printHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if !cfg.QuoteAllDestinations {
		return nil
	}

	query, err := queries.NewQuoteShippingQuery(o.Customer(), o.Items())
	if err != nil {
		return err
	}

	quoteHandler := root.CreateQuoteShippingQueryHandler()
	quotes, err := quoteHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out); err != nil {
		return err
	}
	for _, q := range quotes {
		if _, err = fmt.Fprintf(out, "%-13s shipping %s, final total %s\n", q.Destination, q.Shipping, q.FinalTotal); err != nil {
			return err
		}
	}

	return nil
}
