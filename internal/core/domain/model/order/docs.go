// Package order provides the Order aggregate root and its line items.
//
// The package includes:
//   - Item: an immutable priced line entry
//   - Order: the aggregate combining a customer, items and a shipping policy
//
// Key business rules:
//   - Item names are never blank and prices are never negative
//   - An order may have no items; its subtotal is then zero
//   - Subtotal, shipping cost and final total are derived on every call and never stored
//   - An order has no mutation methods; it is valid from construction to disposal
package order
