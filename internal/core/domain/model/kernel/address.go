package kernel

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"avpayments/internal/pkg/errs"
)

// addressHexLength is the length of a hex-encoded derived address.
const addressHexLength = sha256.Size * 2

// ErrAddressIsNotConstructed indicates that an Address was not properly
// initialized through one of the constructor functions.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via DeriveAddress or AddressFromString")

// Address is the deterministic storage location of a record, computed from a
// tagged seed tuple such as ("vehicle", vehicleId). Any participant can
// recompute it without a lookup table, so the address serves both as the
// primary key of the account store and as its implicit uniqueness
// constraint: a create against an occupied address fails with
// AddressAlreadyInUse, and derivation collision is the only duplicate check
// the engine needs.
//
// An Address is the hex encoding of a SHA-256 digest over the tag and the
// seed components, each separated by a zero byte so distinct tuples can
// never collide by concatenation.
//
// Address is immutable and thread-safe.
type Address struct {
	value string
}

// DeriveAddress computes the Address for a tagged seed tuple. The tag names
// the record kind ("config", "vehicle", "delivery", "escrow", "wallet") and
// the seed components identify the record within that kind.
func DeriveAddress(tag string, seed ...[]byte) Address {
	h := sha256.New()
	h.Write([]byte(tag))
	for _, part := range seed {
		h.Write([]byte{0})
		h.Write(part)
	}
	return Address{value: hex.EncodeToString(h.Sum(nil))}
}

// AddressFromString reconstructs an Address from its hex representation.
// Used when rehydrating records from persistence or parsing request paths.
func AddressFromString(s string) (Address, error) {
	if len(s) != addressHexLength {
		return Address{}, errs.NewValueIsInvalidError("address")
	}
	if _, err := hex.DecodeString(s); err != nil {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	return Address{value: s}, nil
}

// Uint64Seed encodes an integer seed component in little-endian byte order,
// matching the encoding participants use when deriving delivery and escrow
// addresses from a caller-chosen delivery id.
func Uint64Seed(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

// String returns the hex representation of the address.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses for equality.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate checks if the Address is properly constructed.
// Returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
