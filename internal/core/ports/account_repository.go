package ports

import (
	"context"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for value-holding
// accounts, both participant wallets and per-delivery escrows.
type AccountRepository interface {
	// Add persists a new account record. Fails with AddressAlreadyInUse
	// when an account already exists at the derived address.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists a balance change to an existing account. Fails
	// with InvalidState when the stored version no longer matches the
	// aggregate's version.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account record by its derived address. Fails
	// with AccountNotFound when no record exists there.
	Get(ctx context.Context, address kernel.Address) (*account.Account, error)
}
