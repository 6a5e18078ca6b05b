// Package commands contains the application operations that produce output.
// Every command follows the same pattern: a validated command value built by its
// constructor, and a handler that runs the domain logic and talks to the ports.
package commands

import (
	"errors"
	"strings"

	"checkout/internal/core/domain/model/shipping"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrPrintInvoiceCommandIsNotConstructed = errors.New(
		"PrintInvoiceCommand must be created via NewPrintInvoiceCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
)

// LineItem is a raw order line as it arrives from configuration or user input.
// Price is a decimal literal such as "2.50".
type LineItem struct {
	Name  string
	Price string
}

// PrintInvoiceCommand asks for an order to be built, rendered and printed.
//
// Example:
//
//	cmd, err := NewPrintInvoiceCommand("Maria", []LineItem{{Name: "Mouse", Price: "150"}}, shipping.National)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice request: %w", err)
//	}
//
//	handler := NewPrintInvoiceCommandHandler(printer, logger)
//	o, err := handler.Handle(ctx, cmd)
type PrintInvoiceCommand struct { //nolint:recvcheck //using for validation
	customerName string
	items        []LineItem
	destination  shipping.Destination

	guard guard.ConstructorGuard
}

// NewPrintInvoiceCommand checks that a customer name is present and that the
// destination is one of the shipping variants. Item contents are validated by the
// domain model when the handler builds the order.
func NewPrintInvoiceCommand(
	customerName string,
	items []LineItem,
	destination shipping.Destination,
) (PrintInvoiceCommand, error) {
	cmd := PrintInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDestination(destination),
	); err != nil {
		return PrintInvoiceCommand{}, err
	}

	cmd.items = append([]LineItem(nil), items...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrPrintInvoiceCommandIsNotConstructed)
}

func (c PrintInvoiceCommand) CustomerName() string {
	return c.customerName
}

// Items returns a copy of the requested order lines.
func (c PrintInvoiceCommand) Items() []LineItem {
	return append([]LineItem(nil), c.items...)
}

func (c PrintInvoiceCommand) Destination() shipping.Destination {
	return c.destination
}

func (c *PrintInvoiceCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *PrintInvoiceCommand) setDestination(destination shipping.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
