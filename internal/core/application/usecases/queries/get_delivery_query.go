// Package queries contains read-only operations against the stored records.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery order by customer and
// delivery identifier, the same pair its storage address is derived from.
//
// Example:
//
//	query, err := NewGetDeliveryQuery(customer, 7)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetDeliveryQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery: %w", err)
//	}
//	fmt.Printf("Delivery %d is %s\n", resp.DeliveryID, resp.Status)
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	customer   kernel.Identity
	deliveryID uint64

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery order.
func NewGetDeliveryQuery(customer kernel.Identity, deliveryID uint64) (GetDeliveryQuery, error) {
	if err := customer.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		customer:   customer,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// Customer returns the customer that placed the delivery order.
func (q GetDeliveryQuery) Customer() kernel.Identity {
	return q.customer
}

// DeliveryID returns the customer-chosen delivery identifier.
func (q GetDeliveryQuery) DeliveryID() uint64 {
	return q.deliveryID
}

// GetDeliveryQueryResponse represents the current state of one delivery
// order, including its lifecycle timestamps and vehicle assignment.
type GetDeliveryQueryResponse struct {
	Address          kernel.Address
	DeliveryID       uint64
	Customer         kernel.Identity
	PaymentAmount    uint64
	PickupLocation   string
	DeliveryLocation string
	Status           delivery.Status
	AssignedVehicle  *kernel.Address
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
}
