// Package errs provides the standardized error taxonomy of the settlement
// engine. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The taxonomy mirrors the failure modes of the account store and the
// delivery lifecycle:
//   - AddressAlreadyInUseError: a create hit an occupied derived address
//   - AccountNotFoundError: a required record does not exist
//   - UnauthorizedError: the presented signer does not match the required authority
//   - InvalidStateError: an operation was attempted from the wrong lifecycle state
//   - InsufficientFundsError: an escrow funding transfer cannot complete
//   - ArithmeticOverflowError: a fee or payout computation would overflow
//
// Validation errors (ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError) back the constructor checks of value objects,
// aggregates and commands.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrAddressAlreadyInUse)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Every failure is detected before any mutation is persisted and surfaces
// synchronously to the caller; errors.Is against the sentinels is the
// supported way to classify failures.
package errs
