package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrInitializeConfigCommandIsNotConstructed = errors.New(
	"InitializeConfigCommand must be created via NewInitializeConfigCommand constructor",
)

// InitializeConfigCommand represents a request to bootstrap the platform
// configuration. The signing authority becomes the platform authority and
// the configuration record is stored at the address derived from it.
//
// Example:
//
//	cmd, err := NewInitializeConfigCommand(authority, treasury, 250)
//	if err != nil {
//	    return fmt.Errorf("invalid config data: %w", err)
//	}
//
//	handler := NewInitializeConfigCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to initialize config: %w", err)
//	}
type InitializeConfigCommand struct { //nolint:recvcheck //using for validation
	authority kernel.Identity
	treasury  kernel.Identity
	feeBps    uint16

	guard guard.ConstructorGuard
}

// NewInitializeConfigCommand creates a command to initialize the platform.
// The authority must sign, so it doubles as the signer. Fee rate bounds are
// enforced by the configuration record itself.
func NewInitializeConfigCommand(
	authority kernel.Identity,
	treasury kernel.Identity,
	feeBps uint16,
) (InitializeConfigCommand, error) {
	cmd := InitializeConfigCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setTreasury(treasury),
	); err != nil {
		return InitializeConfigCommand{}, err
	}

	cmd.feeBps = feeBps
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInitializeConfigCommandIsNotConstructed if validation fails.
func (c InitializeConfigCommand) Validate() error {
	return c.guard.Validate(ErrInitializeConfigCommandIsNotConstructed)
}

// Authority returns the signing platform authority.
func (c InitializeConfigCommand) Authority() kernel.Identity {
	return c.authority
}

// Treasury returns the identity that collects platform fees.
func (c InitializeConfigCommand) Treasury() kernel.Identity {
	return c.treasury
}

// FeeBps returns the platform fee rate in basis points.
func (c InitializeConfigCommand) FeeBps() uint16 {
	return c.feeBps
}

func (c *InitializeConfigCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *InitializeConfigCommand) setTreasury(treasury kernel.Identity) error {
	if err := treasury.Validate(); err != nil {
		return err
	}

	c.treasury = treasury
	return nil
}
