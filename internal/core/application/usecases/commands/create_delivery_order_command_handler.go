package commands

import (
	"context"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/platform"
)

// CreateDeliveryOrderCommandHandler handles delivery order placement.
// Creates the order in Pending status, opens the escrow, and moves the
// payment amount from the customer wallet into it, all in one transaction.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateDeliveryOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateDeliveryOrderCommandHandler(uowFactory OrderUoWFactory) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Fails with InvalidState when the platform is inactive or paused, with
// InsufficientFunds when the customer wallet cannot cover the payment, and
// with AddressAlreadyInUse when the customer reuses a delivery identifier.
// On failure nothing is persisted and the wallet keeps its balance.
func (h CreateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryOrderCommand) error {
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
	if err = config.EnsureAcceptingOperations(); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	wallet, err := accountRepo.Get(ctx, account.WalletAddress(cmd.Customer()))
	if err != nil {
		return err
	}
	if err = wallet.Withdraw(cmd.PaymentAmount()); err != nil {
		return err
	}

	escrow, err := account.NewEscrow(cmd.Customer(), cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = escrow.Deposit(cmd.PaymentAmount()); err != nil {
		return err
	}

	order, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.Customer(),
		cmd.PaymentAmount(),
		cmd.PickupLocation(),
		cmd.DeliveryLocation(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, order); err != nil {
		return err
	}
	if err = accountRepo.Add(ctx, escrow); err != nil {
		return err
	}
	if err = accountRepo.Update(ctx, wallet); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
