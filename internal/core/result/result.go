// Package result defines the outcome every write and single-item read returns.
// This is part of the Functional Core - no I/O, only values.
package result

import (
	"errors"
	"fmt"
)

// ErrNilArgument is returned, instead of a Result, when a required argument is nil.
// It signals a programming error rather than a business outcome.
var ErrNilArgument = errors.New("argument cannot be nil")

// NilArgument wraps ErrNilArgument with the name of the offending argument.
func NilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

// Status discriminates operation outcomes.
type Status string

const (
	StatusSuccess     Status = "success"
	StatusInvalidData Status = "invalid_data"
	StatusNotFound    Status = "not_found"
	StatusConflict    Status = "conflict"
	StatusError       Status = "error"
)

// Result is the outcome of an operation.
// Errors is non-empty only when Status is StatusInvalidData.
type Result struct {
	Status  Status
	Message string
	Errors  []string
	// Cause is the underlying failure for StatusError; never shown to users.
	Cause error
}

// Success reports a mutation that was applied (or an item that was found).
func Success(message string) *Result {
	return &Result{Status: StatusSuccess, Message: message}
}

// InvalidData reports field validation failures, one message per violated rule.
func InvalidData(message string, errs []string) *Result {
	return &Result{Status: StatusInvalidData, Message: message, Errors: errs}
}

// NotFound reports that the entity itself or a referenced one does not exist.
func NotFound(message string) *Result {
	return &Result{Status: StatusNotFound, Message: message}
}

// Conflict reports a uniqueness, consistency or business-rule violation.
func Conflict(message string) *Result {
	return &Result{Status: StatusConflict, Message: message}
}

// Failure reports an unexpected error, typically from storage.
func Failure(message string, cause error) *Result {
	return &Result{Status: StatusError, Message: message, Cause: cause}
}

// OK reports whether the operation succeeded.
func (r *Result) OK() bool {
	return r != nil && r.Status == StatusSuccess
}

// Err converts a non-success result into an error; nil on success.
func (r *Result) Err() error {
	if r == nil || r.Status == StatusSuccess {
		return nil
	}
	return &Error{Result: r}
}

// Error adapts a non-success Result to the error interface.
type Error struct {
	Result *Result
}

func (e *Error) Error() string {
	if e.Result.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Result.Status, e.Result.Message, e.Result.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Result.Status, e.Result.Message)
}

func (e *Error) Unwrap() error {
	return e.Result.Cause
}

// StatusOf extracts the status from an error produced by Result.Err.
func StatusOf(err error) (Status, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Result.Status, true
	}
	return "", false
}
