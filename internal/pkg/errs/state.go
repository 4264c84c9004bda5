package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for lifecycle precondition violations,
// including races lost to a concurrent writer.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError indicates an operation was attempted from a lifecycle
// state that does not permit it. Two operators racing to accept the same
// pending delivery surface the same error on the losing side.
type InvalidStateError struct {
	Details string
	Cause   error
}

// NewInvalidStateError creates an InvalidStateError describing the violated
// precondition.
func NewInvalidStateError(details string) *InvalidStateError {
	return &InvalidStateError{Details: details}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping a cause.
func NewInvalidStateErrorWithCause(details string, cause error) *InvalidStateError {
	return &InvalidStateError{Details: details, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, sanitize(e.Details), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, sanitize(e.Details))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
