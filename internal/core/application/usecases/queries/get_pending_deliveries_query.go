package queries

import (
	"errors"
	"time"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves all delivery orders still awaiting a
// vehicle, oldest first. Used by operators scanning for work and by the
// pending orders monitor.
//
// Example:
//
//	query := NewGetPendingDeliveriesQuery()
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending deliveries: %w", err)
//	}
//	fmt.Printf("%d deliveries awaiting a vehicle\n", len(pending))
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query to retrieve pending deliveries.
// This is a parameterless query.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// GetPendingDeliveriesQueryResponse represents one delivery order awaiting
// acceptance.
type GetPendingDeliveriesQueryResponse struct {
	Address          kernel.Address
	DeliveryID       uint64
	Customer         kernel.Identity
	PaymentAmount    uint64
	PickupLocation   string
	DeliveryLocation string
	CreatedAt        time.Time
}
