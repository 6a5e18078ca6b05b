package order

import "fmt"

const (
	invoiceHeaderFormat     = "Order for: %s"
	invoiceSubtotalFormat   = "Subtotal: %s"
	invoiceShippingFormat   = "Shipping: %s"
	invoiceFinalTotalFormat = "Final total: %s"
)

// RenderInvoice returns the invoice text, one element per line: a customer header,
// one line per item, then subtotal, shipping and final total. Amounts use two
// decimal places. Rendering has no side effects; emitting the lines is up to
// the caller.
func (o *Order) RenderInvoice() []string {
	lines := make([]string, 0, len(o.items)+4)

	lines = append(lines, fmt.Sprintf(invoiceHeaderFormat, o.customer.Name()))
	for _, item := range o.items {
		lines = append(lines, item.String())
	}
	lines = append(lines,
		fmt.Sprintf(invoiceSubtotalFormat, o.ComputeSubtotal()),
		fmt.Sprintf(invoiceShippingFormat, o.ComputeShippingCost()),
		fmt.Sprintf(invoiceFinalTotalFormat, o.ComputeFinalTotal()),
	)

	return lines
}
