// Package logprinter emits rendered invoices as structured log records.
package logprinter

import (
	"context"
	"log/slog"

	"checkout/internal/core/domain/model/kernel"
)

// Printer logs one Info record per invoice line with the order ID attached, so
// invoices from different orders can be told apart in a shared log stream.
type Printer struct {
	logger *slog.Logger
}

// NewPrinter logs through logger, or through slog.Default when logger is nil.
func NewPrinter(logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Printer{
		logger: logger.With("component", "invoice_log_printer"),
	}
}

func (p *Printer) Print(ctx context.Context, orderID kernel.UUID, lines []string) error {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.InfoContext(ctx, line,
			"order_id", orderID.String(),
			"line", i+1,
		)
	}
	return nil
}
