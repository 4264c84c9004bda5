package kernel

import (
	"fmt"

	"avpayments/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not properly
// initialized through one of the constructor functions. This error is
// returned when validating a zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError(
	"identity must be created via NewIdentity, IdentityFromString, or IdentityFromBytes")

// Identity is a value object that represents a participant of the platform:
// the platform authority, a customer, a vehicle operator or the treasury.
// Key material and signature verification belong to the surrounding wallet
// runtime; inside the engine an Identity is the already-authenticated signer
// of an operation, compared against the authority a record requires.
//
// The zero value of Identity is invalid and must be constructed using one of
// the provided factory functions: NewIdentity, IdentityFromString, or
// IdentityFromBytes.
//
// Identity is immutable and thread-safe, making it suitable for concurrent use.
type Identity struct {
	id uuid.UUID
}

// NewIdentity generates a new random Identity. This is the primary way to
// mint participant identities in tests and tooling; production identities
// arrive from the wallet runtime via IdentityFromString.
func NewIdentity() Identity {
	return Identity{
		id: uuid.New(),
	}
}

// IdentityFromString parses an Identity from its canonical string
// representation. Returns an error if the string is not a valid identity.
// This function is typically used when reconstructing records from
// persistence or when parsing signer identities from external requests.
func IdentityFromString(s string) (Identity, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid identity format: %w", err)
	}
	return Identity{id: id}, nil
}

// IdentityFromBytes creates an Identity from a 16-byte slice.
// Returns an error if the byte slice is not valid for construction.
func IdentityFromBytes(b []byte) (Identity, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid identity format: %w", err)
	}
	identity := Identity{id: id}
	if err = identity.Validate(); err != nil {
		return Identity{}, err
	}

	return identity, nil
}

// String returns the canonical string representation of the identity.
func (i Identity) String() string {
	return i.id.String()
}

// Bytes returns the underlying identity value.
// For a byte slice representation, use identity.Bytes()[:].
func (i Identity) Bytes() uuid.UUID {
	return i.id
}

// IsEqual compares two identities for equality.
func (i Identity) IsEqual(other Identity) bool {
	return i.id == other.id
}

// Validate checks if the Identity is properly constructed.
// Returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.id == uuid.Nil {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
