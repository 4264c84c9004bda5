package commands

import (
	"context"

	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/core/domain/model/vehicle"
	"avpayments/internal/core/domain/services"
)

// RegisterVehicleCommandHandler handles fleet registration. Checks the
// platform gate and the authority signature, then creates the vehicle
// record in active, not busy state with a zero delivery counter.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	authorizer services.Authorizer
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
// Requires a VehicleUoWFactory for transactional persistence.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewAuthorizer(),
	}
}

// Handle processes the vehicle registration command.
// Fails with InvalidState when the platform is inactive or paused, with
// Unauthorized when the signer is not the platform authority, and with
// AddressAlreadyInUse when the vehicle identifier is taken.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
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
	if err = h.authorizer.RequireSigner("registerVehicle", config.Authority(), cmd.Signer()); err != nil {
		return err
	}

	newVehicle, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Operator(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
