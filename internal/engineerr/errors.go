// Package engineerr defines the two terminal error kinds the pipeline may
// produce (spec.md §7): a ValidationFailure surfaced to the transport as a
// 400, and an InternalFailure — an arithmetic invariant violated on input
// that already passed validation, treated as a bug rather than a normal
// control-flow path, surfaced as a 500.
//
// Shaped after the teacher's internal/rpc/rpc_types.RpcError: a short
// machine-readable kind plus a single human-readable message, never a
// monetary value (spec.md §7 forbids logging amounts).
package engineerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind identifies which of the two terminal error surfaces produced this
// error.
type Kind string

const (
	ValidationFailure Kind = "validation_failed"
	InternalFailure   Kind = "internal_failed"
)

// Error is the single error type the engine returns. Field is populated for
// ValidationFailure when the violation traces to one input field; it is
// empty for a cross-field rule or any InternalFailure.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation builds a ValidationFailure for a single offending field.
func Validation(field, reason string) *Error {
	return &Error{Kind: ValidationFailure, Field: field, Message: reason}
}

// ValidationMessage builds a ValidationFailure not tied to one field (the
// aggregated multi-rule message built by internal/engine/validate).
func ValidationMessage(reason string) *Error {
	return &Error{Kind: ValidationFailure, Message: reason}
}

// Internal wraps an unexpected arithmetic invariant violation. The wrapped
// cause keeps a stack trace (via cockroachdb/errors) for operator logs; the
// message returned to the caller stays a flat, amount-free string.
func Internal(reason string, cause error) *Error {
	return &Error{
		Kind:    InternalFailure,
		Message: reason,
		cause:   errors.WithStack(errors.Wrap(cause, reason)),
	}
}

// IsValidation reports whether err is a ValidationFailure, for the
// transport's 400/500 split.
func IsValidation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ValidationFailure
	}
	return false
}
