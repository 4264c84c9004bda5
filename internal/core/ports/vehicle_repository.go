package ports

import (
	"context"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle
// aggregates in the fleet registry.
type VehicleRepository interface {
	// Add persists a new vehicle record. Fails with AddressAlreadyInUse
	// when a vehicle is already registered at the derived address.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle record. Fails with
	// InvalidState when the stored version no longer matches the
	// aggregate's version, which signals a concurrent assignment.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle record by its derived address. Fails with
	// AccountNotFound when no record exists there.
	Get(ctx context.Context, address kernel.Address) (*vehicle.Vehicle, error)
}
