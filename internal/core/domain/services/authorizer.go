package services

import (
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
)

// Authorizer is the domain service enforcing signer checks. Every operation
// names the authority it requires (the platform authority for admin and
// registration operations, the customer for order creation, the assigned
// vehicle's operator for accept and complete) and the Authorizer compares
// the presented signer against it.
//
// The contract fails closed: a missing or mismatched signer is rejected
// with Unauthorized before any state mutation is attempted, and no
// operation performs partial authorization.
type Authorizer struct{}

// NewAuthorizer creates a new Authorizer instance.
func NewAuthorizer() Authorizer {
	return Authorizer{}
}

// RequireSigner verifies that the presented signer equals the required
// authority for the named operation.
//
// Returns:
//   - nil when the signer matches
//   - a validation error when either identity is not constructed
//   - Unauthorized when the signer does not match the required authority
func (Authorizer) RequireSigner(operation string, required kernel.Identity, signer kernel.Identity) error {
	if err := required.Validate(); err != nil {
		return err
	}
	if err := signer.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(operation, signer.String(), err)
	}

	if !required.IsEqual(signer) {
		return errs.NewUnauthorizedError(operation, signer.String())
	}

	return nil
}
