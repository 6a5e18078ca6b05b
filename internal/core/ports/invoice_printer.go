// Package ports defines the contracts between the application layer and the
// output adapters that emit rendered invoices.
package ports

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
)

// InvoicePrinter emits the lines of a rendered invoice.
type InvoicePrinter interface {
	// Print emits lines in order. orderID identifies the invoice for adapters that
	// interleave output from several orders; it is not part of the invoice text.
	Print(ctx context.Context, orderID kernel.UUID, lines []string) error
}
