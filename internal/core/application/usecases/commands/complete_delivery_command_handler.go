package commands

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/core/domain/services"
	"avpayments/internal/core/ports"
	"avpayments/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler handles delivery completion and settlement.
// Splits the escrowed payment at the configured fee rate, pays the operator
// share and the treasury fee, marks the delivery Completed, and releases the
// vehicle with an incremented delivery counter. All record updates commit
// atomically; any failure leaves every balance and status untouched.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCompleteDeliveryCommand(authority, operator, customer, 1)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrUnauthorized):
//	    log.Println("signer does not operate the assigned vehicle")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("delivery is not in progress")
//	case err != nil:
//	    log.Printf("completion failed: %v", err)
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	authorizer services.Authorizer
	settlement services.SettlementEngine
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewAuthorizer(),
		settlement: services.NewSettlementEngine(),
	}
}

// Handle processes the completion command.
// Fails with InvalidState when the platform gate is closed or the delivery
// is not InProgress, with Unauthorized when the signer is not the assigned
// vehicle's operator, and with InsufficientFunds or ArithmeticOverflow when
// the settlement arithmetic cannot be applied.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	order, err := deliveryRepo.Get(ctx, delivery.Address(cmd.Customer(), cmd.DeliveryID()))
	if err != nil {
		return err
	}

	vehicleAddress := order.AssignedVehicle()
	if vehicleAddress == nil {
		return errs.NewInvalidStateError("delivery has no assigned vehicle")
	}

	vehicleRepo := uow.VehicleRepository()
	assignedVehicle, err := vehicleRepo.Get(ctx, *vehicleAddress)
	if err != nil {
		return err
	}

	if err = h.authorizer.RequireSigner("completeDelivery", assignedVehicle.Operator(), cmd.Signer()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	escrow, err := accountRepo.Get(ctx, account.EscrowAddress(cmd.Customer(), cmd.DeliveryID()))
	if err != nil {
		return err
	}

	operatorWallet, operatorCreated, err := getOrCreateWallet(ctx, accountRepo, assignedVehicle.Operator())
	if err != nil {
		return err
	}

	// The operator may be the treasury itself; both payout legs then land
	// in the same wallet record.
	treasuryWallet, treasuryCreated := operatorWallet, false
	if !config.Treasury().IsEqual(assignedVehicle.Operator()) {
		treasuryWallet, treasuryCreated, err = getOrCreateWallet(ctx, accountRepo, config.Treasury())
		if err != nil {
			return err
		}
	}

	// Validate the lifecycle transition before touching any balance so a
	// repeated completion fails on the order status, not on the drained escrow.
	if err = order.Complete(); err != nil {
		return err
	}
	if err = assignedVehicle.RecordCompletion(); err != nil {
		return err
	}

	if _, _, err = h.settlement.Settle(
		escrow, operatorWallet, treasuryWallet, order.PaymentAmount(), config.FeeBps(),
	); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, order); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, assignedVehicle); err != nil {
		return err
	}
	if err = accountRepo.Update(ctx, escrow); err != nil {
		return err
	}
	if err = persistWallet(ctx, accountRepo, operatorWallet, operatorCreated); err != nil {
		return err
	}
	if treasuryWallet != operatorWallet {
		if err = persistWallet(ctx, accountRepo, treasuryWallet, treasuryCreated); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func getOrCreateWallet(
	ctx context.Context,
	repo ports.AccountRepository,
	holder kernel.Identity,
) (*account.Account, bool, error) {
	wallet, err := repo.Get(ctx, account.WalletAddress(holder))
	if errors.Is(err, errs.ErrAccountNotFound) {
		wallet, err = account.NewWallet(holder)
		return wallet, true, err
	}
	return wallet, false, err
}

func persistWallet(
	ctx context.Context,
	repo ports.AccountRepository,
	wallet *account.Account,
	created bool,
) error {
	if created {
		return repo.Add(ctx, wallet)
	}
	return repo.Update(ctx, wallet)
}
