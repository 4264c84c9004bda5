// Package account contains the fund Account aggregate: the value-holding
// records of the engine. Wallets belong to participants (customers,
// operators, the treasury); escrow accounts belong to no participant at all
// and are custodied exclusively by the settlement engine, so no operation
// exists that lets a customer or operator withdraw from one. All balance
// arithmetic is overflow-checked; value is never created or destroyed.
package account

import (
	"errors"
	"fmt"
	"math"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

// Kind distinguishes participant wallets from engine-custodied escrows.
type Kind int

const (
	// UnknownKind represents an invalid or undefined account kind.
	UnknownKind Kind = iota

	// Wallet is a participant-held fund account.
	Wallet

	// Escrow is an engine-custodied fund account bound to one delivery.
	Escrow
)

// Domain errors for fund accounts.
var (
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewWallet or NewEscrow constructor")
)

// String returns the human-readable name of the account kind.
func (k Kind) String() string {
	switch k {
	case Wallet:
		return "Wallet"
	case Escrow:
		return "Escrow"
	default:
		return "Unknown"
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != Wallet && k != Escrow {
		return errs.NewValueIsInvalidErrorWithCause("account kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// WalletAddress derives the storage address of the wallet held by the given
// participant.
func WalletAddress(holder kernel.Identity) kernel.Address {
	raw := holder.Bytes()
	return kernel.DeriveAddress("wallet", raw[:])
}

// EscrowAddress derives the storage address of the escrow account funding
// the delivery created by the given customer under the caller-chosen
// delivery id. The seed tail matches the delivery address seed, so both
// records are recomputable from the same inputs.
func EscrowAddress(customer kernel.Identity, deliveryID uint64) kernel.Address {
	raw := customer.Bytes()
	return kernel.DeriveAddress("escrow", raw[:], kernel.Uint64Seed(deliveryID))
}

// Account is a value-holding record of the account store.
//
// Account follows these invariants:
//   - the address is derived from the kind's seed tuple and never changes
//   - a Wallet has a holder identity; an Escrow has none
//   - the balance only changes through overflow-checked Deposit/Withdraw
type Account struct {
	// address is the derived storage address
	address kernel.Address
	// kind distinguishes wallets from escrows
	kind Kind
	// holder is the owning participant, nil for escrows
	holder *kernel.Identity
	// balance is the custodied value in base units
	balance uint64
	// version is the optimistic concurrency token of the persisted record
	version int64

	guard guard.ConstructorGuard
}

// NewWallet creates an empty wallet for a participant.
func NewWallet(holder kernel.Identity) (*Account, error) {
	if err := holder.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		address: WalletAddress(holder),
		kind:    Wallet,
		holder:  &holder,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewEscrow creates an empty escrow account for the delivery identified by
// the customer and delivery id. The account is custodied by the engine.
func NewEscrow(customer kernel.Identity, deliveryID uint64) (*Account, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		address: EscrowAddress(customer, deliveryID),
		kind:    Escrow,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
func RestoreAccount(
	address kernel.Address,
	kind Kind,
	holder *kernel.Identity,
	balance uint64,
	version int64,
) (*Account, error) {
	if err := errors.Join(address.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if kind == Wallet && holder == nil {
		return nil, errs.NewValueIsRequiredError("holder")
	}
	if kind == Escrow && holder != nil {
		return nil, errs.NewValueIsInvalidError("holder")
	}
	if holder != nil {
		if err := holder.Validate(); err != nil {
			return nil, err
		}
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	account := &Account{
		address: address,
		kind:    kind,
		balance: balance,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}
	if holder != nil {
		holderIdentity := *holder
		account.holder = &holderIdentity
	}

	return account, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// Address returns the derived storage address of the account.
func (a *Account) Address() kernel.Address {
	return a.address
}

// Kind returns the account kind.
func (a *Account) Kind() Kind {
	return a.kind
}

// Holder returns the owning participant, nil for escrows.
func (a *Account) Holder() *kernel.Identity {
	return a.holder
}

// Balance returns the custodied value in base units.
func (a *Account) Balance() uint64 {
	return a.balance
}

// Version returns the optimistic concurrency token of the persisted record.
func (a *Account) Version() int64 {
	return a.version
}

// CanDeposit reports whether depositing the amount would overflow the
// balance. Used to pre-check both legs of a settlement before mutating
// either account.
func (a *Account) CanDeposit(amount uint64) error {
	if a.balance > math.MaxUint64-amount {
		return errs.NewArithmeticOverflowError("balance addition")
	}
	return nil
}

// Deposit credits the account. Fails with ArithmeticOverflow when the
// balance cannot hold the amount; the balance is unchanged on failure.
func (a *Account) Deposit(amount uint64) error {
	if err := a.CanDeposit(amount); err != nil {
		return err
	}
	a.balance += amount
	return nil
}

// Withdraw debits the account. Fails with InsufficientFunds when the
// balance is lower than the amount; the balance is unchanged on failure.
func (a *Account) Withdraw(amount uint64) error {
	if a.balance < amount {
		return errs.NewInsufficientFundsError(a.address.String(), amount, a.balance)
	}
	a.balance -= amount
	return nil
}
