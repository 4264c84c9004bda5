package commands

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/core/domain/services"
	"avpayments/internal/pkg/errs"
)

// CreditWalletCommandHandler handles wallet funding. Creates the wallet at
// its derived address on first credit and tops it up afterwards.
type CreditWalletCommandHandler struct {
	uowFactory WalletUoWFactory
	authorizer services.Authorizer
}

// NewCreditWalletCommandHandler creates a handler for wallet funding operations.
// Requires a WalletUoWFactory for transactional persistence.
func NewCreditWalletCommandHandler(uowFactory WalletUoWFactory) CreditWalletCommandHandler {
	return CreditWalletCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewAuthorizer(),
	}
}

// Handle processes the wallet funding command.
// Fails with Unauthorized when the signer is not the platform authority and
// with ArithmeticOverflow when the wallet cannot hold the credited amount.
func (h CreditWalletCommandHandler) Handle(ctx context.Context, cmd CreditWalletCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	config, err := uow.ConfigRepository().Get(ctx, platform.ConfigAddress(cmd.Authority()))
	if err != nil {
		return err
	}
	if err = h.authorizer.RequireSigner("creditWallet", config.Authority(), cmd.Signer()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	wallet, err := accountRepo.Get(ctx, account.WalletAddress(cmd.Holder()))
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		if wallet, err = account.NewWallet(cmd.Holder()); err != nil {
			return err
		}
		if err = wallet.Deposit(cmd.Amount()); err != nil {
			return err
		}
		if err = accountRepo.Add(ctx, wallet); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = wallet.Deposit(cmd.Amount()); err != nil {
			return err
		}
		if err = accountRepo.Update(ctx, wallet); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
