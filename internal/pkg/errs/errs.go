package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument classifies every error raised for a bad input value.
	// ValueIsRequiredError and ValueIsInvalidError both match it with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// ValueIsRequiredError is returned when a mandatory value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return format(ErrValueIsRequired, e.ParamName, e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrInvalidArgument || causeIs(e.Cause, target)
}

// ValueIsInvalidError is returned when a value is present but breaks a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return format(ErrValueIsInvalid, e.ParamName, e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrInvalidArgument || causeIs(e.Cause, target)
}

// TypeMismatchError is returned when a value of the wrong kind is handed to an
// aggregate constructor, e.g. a zero-value entity instead of a constructed one.
type TypeMismatchError struct {
	ParamName string
	Expected  string
	Cause     error
}

func NewTypeMismatchError(paramName, expected string) *TypeMismatchError {
	return &TypeMismatchError{ParamName: paramName, Expected: expected}
}

func NewTypeMismatchErrorWithCause(paramName, expected string, cause error) *TypeMismatchError {
	return &TypeMismatchError{ParamName: paramName, Expected: expected, Cause: cause}
}

func (e *TypeMismatchError) Error() string {
	detail := fmt.Sprintf("%s is not %s", e.ParamName, e.Expected)
	return format(ErrTypeMismatch, detail, e.Cause)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// causeIs lets errors.Is see through Cause while Unwrap keeps returning the
// sentinel of the error kind.
func causeIs(cause, target error) bool {
	return cause != nil && errors.Is(cause, target)
}

func format(kind error, detail string, cause error) string {
	msg := fmt.Sprintf("%s: %s", kind, sanitize(detail))
	if cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(cause.Error()))
	}
	return msg
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
