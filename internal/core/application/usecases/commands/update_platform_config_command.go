package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrUpdatePlatformConfigCommandIsNotConstructed = errors.New(
	"UpdatePlatformConfigCommand must be created via NewUpdatePlatformConfigCommand constructor",
)

// UpdatePlatformConfigCommand represents a request to change the platform
// fee rate or the operational flags. Only the platform authority may apply
// it; deliveries already in flight keep the fee rate they were created under
// until settlement reads the configuration again.
type UpdatePlatformConfigCommand struct { //nolint:recvcheck //using for validation
	authority kernel.Identity
	signer    kernel.Identity
	feeBps    uint16
	isActive  bool
	isPaused  bool

	guard guard.ConstructorGuard
}

// NewUpdatePlatformConfigCommand creates a command to update the
// configuration stored at the address derived from authority. The signer is
// the identity presenting the request and is checked against the stored
// authority by the handler.
func NewUpdatePlatformConfigCommand(
	authority kernel.Identity,
	signer kernel.Identity,
	feeBps uint16,
	isActive bool,
	isPaused bool,
) (UpdatePlatformConfigCommand, error) {
	cmd := UpdatePlatformConfigCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setSigner(signer),
	); err != nil {
		return UpdatePlatformConfigCommand{}, err
	}

	cmd.feeBps = feeBps
	cmd.isActive = isActive
	cmd.isPaused = isPaused
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePlatformConfigCommandIsNotConstructed if validation fails.
func (c UpdatePlatformConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePlatformConfigCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c UpdatePlatformConfigCommand) Authority() kernel.Identity {
	return c.authority
}

// Signer returns the identity presenting the request.
func (c UpdatePlatformConfigCommand) Signer() kernel.Identity {
	return c.signer
}

// FeeBps returns the requested platform fee rate in basis points.
func (c UpdatePlatformConfigCommand) FeeBps() uint16 {
	return c.feeBps
}

// IsActive returns the requested platform activation flag.
func (c UpdatePlatformConfigCommand) IsActive() bool {
	return c.isActive
}

// IsPaused returns the requested platform pause flag.
func (c UpdatePlatformConfigCommand) IsPaused() bool {
	return c.isPaused
}

func (c *UpdatePlatformConfigCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *UpdatePlatformConfigCommand) setSigner(signer kernel.Identity) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}
