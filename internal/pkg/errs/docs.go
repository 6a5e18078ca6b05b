// Package errs provides standardized error types for the checkout application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model.
//
// The package includes the following error types:
//   - ValueIsRequiredError: For when a required value is missing or blank
//   - ValueIsInvalidError: For when a value is present but invalid
//   - TypeMismatchError: For when an aggregate receives a value of the wrong kind
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// ValueIsRequiredError and ValueIsInvalidError additionally match
// ErrInvalidArgument, so callers can classify input failures with a single
// errors.Is check.
package errs
