package commands

import (
	"context"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/core/domain/model/vehicle"
	"avpayments/internal/core/domain/services"
)

// AcceptDeliveryCommandHandler handles delivery acceptance. Moves the
// delivery from Pending to InProgress and marks the vehicle busy in one
// transaction. When two operators race for the same delivery, the version
// check on the delivery row lets exactly one commit win; the loser fails
// with InvalidState.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	authorizer services.Authorizer
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewAuthorizer(),
	}
}

// Handle processes the acceptance command.
// Fails with InvalidState when the platform gate is closed, the delivery is
// not Pending, or the vehicle is inactive or busy, and with Unauthorized
// when the signer is not the vehicle's operator.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
	vehicleRepo := uow.VehicleRepository()

	order, err := deliveryRepo.Get(ctx, delivery.Address(cmd.Customer(), cmd.DeliveryID()))
	if err != nil {
		return err
	}
	acceptingVehicle, err := vehicleRepo.Get(ctx, vehicle.Address(cmd.VehicleID()))
	if err != nil {
		return err
	}

	if err = h.authorizer.RequireSigner("acceptDelivery", acceptingVehicle.Operator(), cmd.Signer()); err != nil {
		return err
	}

	if err = acceptingVehicle.MarkBusy(); err != nil {
		return err
	}
	if err = order.Accept(acceptingVehicle.Address()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, order); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, acceptingVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
