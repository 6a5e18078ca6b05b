// Package shipping provides the shipping-cost policies applied to an order.
//
// The package includes:
//   - Policy: the contract mapping an order subtotal to a shipping fee
//   - Destination: the closed set of flat-rate policies (Local, National, International)
//
// Fees in the current policy set do not depend on the subtotal. The subtotal is
// still part of the contract so that value- or weight-based policies can be added
// without changing callers.
package shipping
