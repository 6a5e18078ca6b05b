package cmd

import (
	"io"
	"log/slog"

	"checkout/internal/adapters/out/console"
	"checkout/internal/adapters/out/logprinter"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/ports"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	printer ports.InvoicePrinter
}

// NewCompositionRoot wires the invoice printer selected by cfg.InvoiceOutput.
// Console output goes to out; log output goes to logger.
func NewCompositionRoot(cfg Config, out io.Writer, logger *slog.Logger) CompositionRoot {
	var printer ports.InvoicePrinter = console.NewPrinter(out)
	if cfg.InvoiceOutput == OutputLog {
		printer = logprinter.NewPrinter(logger)
	}

	return CompositionRoot{
		config:  cfg,
		logger:  logger,
		printer: printer,
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreatePrintInvoiceCommandHandler() commands.PrintInvoiceCommandHandler {
	return commands.NewPrintInvoiceCommandHandler(c.printer, c.logger)
}

func (c *CompositionRoot) CreateQuoteShippingQueryHandler() queries.QuoteShippingQueryHandler {
	return queries.NewQuoteShippingQueryHandler()
}
