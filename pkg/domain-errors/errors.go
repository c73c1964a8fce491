// Package domainerrors provides coded errors shared across modules.
//
// Every error that crosses a module boundary carries a Code so transport
// layers can translate it without string matching, and so tests can assert
// on failure categories instead of message text.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for callers and transport layers.
type Code string

const (
	// CodeInvalidInput marks a domain invariant violation at a trust boundary
	// (bad region code, blank scenario, out-of-range sigma).
	CodeInvalidInput Code = "invalid_input"

	// CodeBadRequest marks a malformed or incomplete request.
	CodeBadRequest Code = "bad_request"

	// CodeNotFound marks a missing record or upstream 404.
	CodeNotFound Code = "not_found"

	// CodeUnsupported marks a permanent configuration/usage error: the
	// requested operation has no registered handler. Never retryable.
	CodeUnsupported Code = "unsupported"

	// CodeUpstream marks a failed call to an external data source.
	CodeUpstream Code = "upstream_failure"

	// CodeArithmetic marks degenerate reference data (e.g. a zero
	// normalization threshold), distinct from upstream unavailability.
	CodeArithmetic Code = "arithmetic_error"

	// CodeInternal marks unexpected failures, including persistence errors.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. It wraps an optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a coded error without an underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. If err is already
// coded, the original code is preserved and only context is added; callers
// closest to the failure decide its category.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return &Error{Code: coded.Code, Message: message, Cause: err}
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal
// for uncoded errors.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP response status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeBadRequest, CodeUnsupported:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstream:
		return http.StatusBadGateway
	case CodeArithmetic, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
