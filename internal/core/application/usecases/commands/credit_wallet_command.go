package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

var ErrCreditWalletCommandIsNotConstructed = errors.New(
	"CreditWalletCommand must be created via NewCreditWalletCommand constructor",
)

// CreditWalletCommand represents a request to fund a participant wallet.
// Value enters the system only through this authority-signed operation;
// deliveries then move it between wallets and escrows without creating or
// destroying any.
type CreditWalletCommand struct { //nolint:recvcheck //using for validation
	authority kernel.Identity
	signer    kernel.Identity
	holder    kernel.Identity
	amount    uint64

	guard guard.ConstructorGuard
}

// NewCreditWalletCommand creates a command to credit the wallet of holder
// with amount base units. The amount must be positive.
func NewCreditWalletCommand(
	authority kernel.Identity,
	signer kernel.Identity,
	holder kernel.Identity,
	amount uint64,
) (CreditWalletCommand, error) {
	cmd := CreditWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setSigner(signer),
		cmd.setHolder(holder),
		cmd.setAmount(amount),
	); err != nil {
		return CreditWalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreditWalletCommandIsNotConstructed if validation fails.
func (c CreditWalletCommand) Validate() error {
	return c.guard.Validate(ErrCreditWalletCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c CreditWalletCommand) Authority() kernel.Identity {
	return c.authority
}

// Signer returns the identity presenting the request.
func (c CreditWalletCommand) Signer() kernel.Identity {
	return c.signer
}

// Holder returns the participant whose wallet is credited.
func (c CreditWalletCommand) Holder() kernel.Identity {
	return c.holder
}

// Amount returns the credited value in base units.
func (c CreditWalletCommand) Amount() uint64 {
	return c.amount
}

func (c *CreditWalletCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *CreditWalletCommand) setSigner(signer kernel.Identity) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *CreditWalletCommand) setHolder(holder kernel.Identity) error {
	if err := holder.Validate(); err != nil {
		return err
	}

	c.holder = holder
	return nil
}

func (c *CreditWalletCommand) setAmount(amount uint64) error {
	if amount == 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
