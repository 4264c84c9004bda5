package ports

import (
	"context"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery order
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery order. Fails with AddressAlreadyInUse
	// when the customer already created an order with the same delivery
	// identifier.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery order. Fails with
	// InvalidState when the stored version no longer matches the
	// aggregate's version; of two racing accepts exactly one wins.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery order by its derived address. Fails with
	// AccountNotFound when no record exists there.
	Get(ctx context.Context, address kernel.Address) (*delivery.Delivery, error)

	// GetAllPending retrieves all delivery orders awaiting a vehicle,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*delivery.Delivery, error)
}
