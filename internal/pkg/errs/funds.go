package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for value transfer failures.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// InsufficientFundsError indicates a value transfer could not complete
// because the source account balance is lower than the requested amount.
type InsufficientFundsError struct {
	Address   string
	Requested uint64
	Available uint64
	Cause     error
}

// NewInsufficientFundsError creates an InsufficientFundsError for the source
// account, the amount requested and the balance actually available.
func NewInsufficientFundsError(address string, requested, available uint64) *InsufficientFundsError {
	return &InsufficientFundsError{Address: address, Requested: requested, Available: available}
}

// NewInsufficientFundsErrorWithCause creates an InsufficientFundsError wrapping a cause.
func NewInsufficientFundsErrorWithCause(address string, requested, available uint64, cause error) *InsufficientFundsError {
	return &InsufficientFundsError{Address: address, Requested: requested, Available: available, Cause: cause}
}

func (e *InsufficientFundsError) Error() string {
	msg := fmt.Sprintf("%s: address is: %s, requested is: %d, available is: %d",
		ErrInsufficientFunds, sanitize(e.Address), e.Requested, e.Available)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// ArithmeticOverflowError indicates a fee or payout computation would
// overflow. The engine never wraps silently; the whole operation fails
// with this error instead.
type ArithmeticOverflowError struct {
	Operation string
	Cause     error
}

// NewArithmeticOverflowError creates an ArithmeticOverflowError for the named
// computation.
func NewArithmeticOverflowError(operation string) *ArithmeticOverflowError {
	return &ArithmeticOverflowError{Operation: operation}
}

// NewArithmeticOverflowErrorWithCause creates an ArithmeticOverflowError wrapping a cause.
func NewArithmeticOverflowErrorWithCause(operation string, cause error) *ArithmeticOverflowError {
	return &ArithmeticOverflowError{Operation: operation, Cause: cause}
}

func (e *ArithmeticOverflowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: operation is: %s (cause: %s)", ErrArithmeticOverflow, sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: operation is: %s", ErrArithmeticOverflow, sanitize(e.Operation))
}

func (e *ArithmeticOverflowError) Unwrap() error {
	return ErrArithmeticOverflow
}
