// Package ports defines repository interfaces for the settlement domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/platform"
)

// ConfigRepository defines the persistence contract for the platform
// configuration singleton derived from the platform authority.
type ConfigRepository interface {
	// Add persists a new configuration record. Fails with
	// AddressAlreadyInUse when a configuration already exists at the
	// derived address.
	Add(ctx context.Context, aggregate *platform.Config) error

	// Update persists changes to an existing configuration record.
	// Fails with InvalidState when the stored version no longer
	// matches the aggregate's version.
	Update(ctx context.Context, aggregate *platform.Config) error

	// Get retrieves the configuration record by its derived address.
	// Fails with AccountNotFound when no record exists there.
	Get(ctx context.Context, address kernel.Address) (*platform.Config, error)
}
