package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

// PrintInvoiceCommandHandler builds an order from a PrintInvoiceCommand, renders
// its invoice and hands the lines to an InvoicePrinter.
type PrintInvoiceCommandHandler struct {
	printer ports.InvoicePrinter
	logger  *slog.Logger
}

// NewPrintInvoiceCommandHandler creates a handler writing to printer. A nil logger
// falls back to slog.Default().
func NewPrintInvoiceCommandHandler(printer ports.InvoicePrinter, logger *slog.Logger) PrintInvoiceCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return PrintInvoiceCommandHandler{
		printer: printer,
		logger:  logger.With("component", "print_invoice_handler"),
	}
}

// Handle returns the printed order so callers can read its totals. Nothing is
// printed when any domain validation fails.
func (h *PrintInvoiceCommandHandler) Handle(ctx context.Context, cmd PrintInvoiceCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, customerErr := customer.NewCustomer(cmd.CustomerName())
	items, itemsErr := buildItems(cmd.Items())
	if err := errors.Join(customerErr, itemsErr); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(c, items, cmd.Destination())
	if err != nil {
		return nil, err
	}

	if err = h.printer.Print(ctx, o.ID(), o.RenderInvoice()); err != nil {
		return nil, fmt.Errorf("print invoice: %w", err)
	}

	h.logger.InfoContext(ctx, "Invoice printed",
		"order_id", o.ID().String(),
		"customer", c.Name(),
		"items", len(items),
		"destination", cmd.Destination().String(),
		"final_total", o.ComputeFinalTotal().Fixed(),
	)

	return o, nil
}

func buildItems(lines []LineItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))

	var err error
	for i, line := range lines {
		item, itemErr := order.NewItemFromString(line.Name, line.Price)
		if itemErr != nil {
			err = errors.Join(err, fmt.Errorf("items[%d]: %w", i, itemErr))
			continue
		}
		items = append(items, item)
	}
	if err != nil {
		return nil, err
	}

	return items, nil
}
