package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned vehicle's operator
// reporting a delivery as done, which settles the escrowed payment.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	authority  kernel.Identity
	signer     kernel.Identity
	customer   kernel.Identity
	deliveryID uint64

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// The signer must operate the vehicle assigned to the delivery; the handler
// verifies this against the assignment.
func NewCompleteDeliveryCommand(
	authority kernel.Identity,
	signer kernel.Identity,
	customer kernel.Identity,
	deliveryID uint64,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setSigner(signer),
		cmd.setCustomer(customer),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c CompleteDeliveryCommand) Authority() kernel.Identity {
	return c.authority
}

// Signer returns the identity presenting the request.
func (c CompleteDeliveryCommand) Signer() kernel.Identity {
	return c.signer
}

// Customer returns the customer that placed the delivery order.
func (c CompleteDeliveryCommand) Customer() kernel.Identity {
	return c.customer
}

// DeliveryID returns the customer-chosen delivery identifier.
func (c CompleteDeliveryCommand) DeliveryID() uint64 {
	return c.deliveryID
}

func (c *CompleteDeliveryCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *CompleteDeliveryCommand) setSigner(signer kernel.Identity) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *CompleteDeliveryCommand) setCustomer(customer kernel.Identity) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}
