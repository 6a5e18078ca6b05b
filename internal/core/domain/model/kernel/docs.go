// Package kernel provides the shared value objects of the checkout domain model.
//
// The package includes:
//   - UUID: an identity value object backed by github.com/google/uuid
//   - Money: a non-negative decimal amount backed by github.com/shopspring/decimal
//
// Both types are immutable and reject their zero value in Validate, so an
// aggregate can detect a value that bypassed its constructor.
package kernel
