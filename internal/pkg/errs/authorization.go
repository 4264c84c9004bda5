package errs

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the sentinel for signer/authority mismatches.
var ErrUnauthorized = errors.New("unauthorized")

// UnauthorizedError indicates the presented signer does not match the
// authority an operation requires. Authorization fails closed: the check runs
// before any state mutation is attempted.
type UnauthorizedError struct {
	Operation string
	Signer    string
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the named operation
// and the signer that presented it.
func NewUnauthorizedError(operation, signer string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Signer: signer}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping a cause.
func NewUnauthorizedErrorWithCause(operation, signer string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Signer: signer, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: operation is: %s, signer is: %s (cause: %s)",
			ErrUnauthorized, sanitize(e.Operation), sanitize(e.Signer), e.Cause)
	}
	return fmt.Sprintf("%s: operation is: %s, signer is: %s",
		ErrUnauthorized, sanitize(e.Operation), sanitize(e.Signer))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
