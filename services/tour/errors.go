package tour

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the coordinator. Every failure is terminal for the
// request; retry policy belongs to the caller.
const (
	CodeNotFound   = "notFound"
	CodeValidation = "validation"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

type CoordinatorError struct {
	Code    string
	Message string
}

func (e *CoordinatorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &CoordinatorError{Code: CodeNotFound, Message: msg}
}

func NewValidationError(msg string) error {
	return &CoordinatorError{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &CoordinatorError{Code: CodeConflict, Message: msg}
}

func NewInternalError(msg string) error {
	return &CoordinatorError{Code: CodeInternal, Message: msg}
}

// CodeOf classifies an error by coordinator code. Unclassified errors are
// internal.
func CodeOf(err error) string {
	var ce *CoordinatorError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeInternal
}
