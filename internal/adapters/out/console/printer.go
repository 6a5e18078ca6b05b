// Package console writes rendered invoices to a terminal or any other io.Writer.
package console

import (
	"context"
	"fmt"
	"io"

	"checkout/internal/core/domain/model/kernel"
)

// Printer writes each invoice line followed by a newline.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print stops at the first write error. The order ID is not written.
func (p *Printer) Print(ctx context.Context, _ kernel.UUID, lines []string) error {
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("write invoice line: %w", err)
		}
	}
	return nil
}
