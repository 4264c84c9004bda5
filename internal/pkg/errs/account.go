package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for account store failures.
var (
	ErrAddressAlreadyInUse = errors.New("address already in use")
	ErrAccountNotFound     = errors.New("account not found")
)

// AddressAlreadyInUseError indicates a create operation targeted a derived
// address that is already occupied. Derivation collision is the sole
// duplicate-prevention mechanism of the account store, so this error doubles
// as the uniqueness violation for vehicle ids and delivery ids.
type AddressAlreadyInUseError struct {
	Kind    string
	Address string
	Cause   error
}

// NewAddressAlreadyInUseError creates an AddressAlreadyInUseError for the
// record kind and derived address of the rejected create.
func NewAddressAlreadyInUseError(kind, address string) *AddressAlreadyInUseError {
	return &AddressAlreadyInUseError{Kind: kind, Address: address}
}

// NewAddressAlreadyInUseErrorWithCause creates an AddressAlreadyInUseError
// wrapping the underlying storage error.
func NewAddressAlreadyInUseErrorWithCause(kind, address string, cause error) *AddressAlreadyInUseError {
	return &AddressAlreadyInUseError{Kind: kind, Address: address, Cause: cause}
}

func (e *AddressAlreadyInUseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: kind is: %s, address is: %s (cause: %s)",
			ErrAddressAlreadyInUse, sanitize(e.Kind), sanitize(e.Address), e.Cause)
	}
	return fmt.Sprintf("%s: kind is: %s, address is: %s",
		ErrAddressAlreadyInUse, sanitize(e.Kind), sanitize(e.Address))
}

func (e *AddressAlreadyInUseError) Unwrap() error {
	return ErrAddressAlreadyInUse
}

// AccountNotFoundError indicates a read or update targeted a derived address
// with no record behind it.
type AccountNotFoundError struct {
	Kind    string
	Address string
	Cause   error
}

// NewAccountNotFoundError creates an AccountNotFoundError for the record kind
// and derived address of the missing dependency.
func NewAccountNotFoundError(kind, address string) *AccountNotFoundError {
	return &AccountNotFoundError{Kind: kind, Address: address}
}

// NewAccountNotFoundErrorWithCause creates an AccountNotFoundError wrapping
// the underlying storage error.
func NewAccountNotFoundErrorWithCause(kind, address string, cause error) *AccountNotFoundError {
	return &AccountNotFoundError{Kind: kind, Address: address, Cause: cause}
}

func (e *AccountNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: kind is: %s, address is: %s (cause: %s)",
			ErrAccountNotFound, sanitize(e.Kind), sanitize(e.Address), e.Cause)
	}
	return fmt.Sprintf("%s: kind is: %s, address is: %s",
		ErrAccountNotFound, sanitize(e.Kind), sanitize(e.Address))
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrAccountNotFound
}
