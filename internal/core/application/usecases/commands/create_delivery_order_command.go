package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand represents a customer request for a delivery.
// The customer signs, picks a delivery identifier unique among their own
// orders, and the payment amount is locked into escrow on creation.
//
// Example:
//
//	cmd, err := NewCreateDeliveryOrderCommand(authority, customer, 1, 1_000_000_000,
//	    "37.7749,-122.4194", "37.8044,-122.2712")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateDeliveryOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery order: %w", err)
//	}
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	authority        kernel.Identity
	customer         kernel.Identity
	deliveryID       uint64
	paymentAmount    uint64
	pickupLocation   kernel.GeoPoint
	deliveryLocation kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand creates a command to place a delivery order.
// The customer is the signer. The payment amount must be positive; location
// formats are validated by their domain type.
func NewCreateDeliveryOrderCommand(
	authority kernel.Identity,
	customer kernel.Identity,
	deliveryID uint64,
	paymentAmount uint64,
	pickupLocation string,
	deliveryLocation string,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setCustomer(customer),
		cmd.setPaymentAmount(paymentAmount),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryOrderCommandIsNotConstructed if validation fails.
func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c CreateDeliveryOrderCommand) Authority() kernel.Identity {
	return c.authority
}

// Customer returns the signing customer.
func (c CreateDeliveryOrderCommand) Customer() kernel.Identity {
	return c.customer
}

// DeliveryID returns the customer-chosen delivery identifier.
func (c CreateDeliveryOrderCommand) DeliveryID() uint64 {
	return c.deliveryID
}

// PaymentAmount returns the escrowed payment in base units.
func (c CreateDeliveryOrderCommand) PaymentAmount() uint64 {
	return c.paymentAmount
}

// PickupLocation returns where the package is collected.
func (c CreateDeliveryOrderCommand) PickupLocation() kernel.GeoPoint {
	return c.pickupLocation
}

// DeliveryLocation returns where the package is dropped off.
func (c CreateDeliveryOrderCommand) DeliveryLocation() kernel.GeoPoint {
	return c.deliveryLocation
}

func (c *CreateDeliveryOrderCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *CreateDeliveryOrderCommand) setCustomer(customer kernel.Identity) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateDeliveryOrderCommand) setPaymentAmount(paymentAmount uint64) error {
	if paymentAmount == 0 {
		return errs.NewValueIsInvalidError("paymentAmount")
	}

	c.paymentAmount = paymentAmount
	return nil
}

func (c *CreateDeliveryOrderCommand) setPickupLocation(location string) error {
	geoPoint, err := kernel.NewGeoPoint(location)
	if err != nil {
		return err
	}

	c.pickupLocation = geoPoint
	return nil
}

func (c *CreateDeliveryOrderCommand) setDeliveryLocation(location string) error {
	geoPoint, err := kernel.NewGeoPoint(location)
	if err != nil {
		return err
	}

	c.deliveryLocation = geoPoint
	return nil
}
