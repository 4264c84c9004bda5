package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a vehicle operator claiming a pending
// delivery for their vehicle. The delivery is addressed by customer and
// delivery identifier, the vehicle by its fleet identifier.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	authority  kernel.Identity
	signer     kernel.Identity
	customer   kernel.Identity
	deliveryID uint64
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command to accept a pending delivery.
// The signer must be the operator of the named vehicle; the handler
// verifies this against the vehicle record.
func NewAcceptDeliveryCommand(
	authority kernel.Identity,
	signer kernel.Identity,
	customer kernel.Identity,
	deliveryID uint64,
	vehicleID string,
) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setSigner(signer),
		cmd.setCustomer(customer),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.vehicleID = vehicleID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptDeliveryCommandIsNotConstructed if validation fails.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c AcceptDeliveryCommand) Authority() kernel.Identity {
	return c.authority
}

// Signer returns the identity presenting the request.
func (c AcceptDeliveryCommand) Signer() kernel.Identity {
	return c.signer
}

// Customer returns the customer that placed the delivery order.
func (c AcceptDeliveryCommand) Customer() kernel.Identity {
	return c.customer
}

// DeliveryID returns the customer-chosen delivery identifier.
func (c AcceptDeliveryCommand) DeliveryID() uint64 {
	return c.deliveryID
}

// VehicleID returns the fleet identifier of the accepting vehicle.
func (c AcceptDeliveryCommand) VehicleID() string {
	return c.vehicleID
}

func (c *AcceptDeliveryCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *AcceptDeliveryCommand) setSigner(signer kernel.Identity) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *AcceptDeliveryCommand) setCustomer(customer kernel.Identity) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}
